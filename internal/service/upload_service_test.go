package service

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"luxedoll/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFileHeader 构造一个multipart文件头供Save使用
func newFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r := multipart.NewReader(&buf, w.Boundary())
	form, err := r.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestAllowedFile(t *testing.T) {
	assert.True(t, AllowedFile("receipt.png"))
	assert.True(t, AllowedFile("receipt.jpg"))
	assert.True(t, AllowedFile("receipt.jpeg"))
	assert.True(t, AllowedFile("receipt.pdf"))
	// 扩展名不区分大小写
	assert.True(t, AllowedFile("RECEIPT.PNG"))
	assert.True(t, AllowedFile("scan.Pdf"))

	assert.False(t, AllowedFile("malware.exe"))
	assert.False(t, AllowedFile("archive.zip"))
	assert.False(t, AllowedFile("noextension"))
	assert.False(t, AllowedFile(""))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "proof_1.png", SanitizeFilename("proof_1.png"))
	// 路径片段被剥离
	assert.Equal(t, "evil.png", SanitizeFilename("../../evil.png"))
	// 特殊字符被剔除
	assert.Equal(t, "proofuid1.png", SanitizeFilename("proof<uid>$1.png"))
}

func TestUploadService_Save(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, "/static/proofs", logger.NewLogger("error"))

	fh := newFileHeader(t, "receipt.PNG", []byte("fake image data"))
	url, filename, err := svc.Save("user-1", fh)
	require.NoError(t, err)

	// 文件名格式: proof_{uid}_{时间戳}_{8位hex}.{小写扩展名}
	pattern := regexp.MustCompile(`^proof_user-1_\d+_[0-9a-f]{8}\.png$`)
	assert.Regexp(t, pattern, filename)
	assert.Equal(t, "/static/proofs/"+filename, url)

	// 文件确实写入磁盘
	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake image data"), data)
}

func TestUploadService_Save_SanitizesUID(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, "/static/proofs", logger.NewLogger("error"))

	// 恶意uid不能把文件写出上传目录
	fh := newFileHeader(t, "receipt.png", []byte("x"))
	_, filename, err := svc.Save("../escape", fh)
	require.NoError(t, err)

	assert.NotContains(t, filename, "/")
	assert.NotContains(t, filename, "..")
	_, err = os.Stat(filepath.Join(dir, filename))
	require.NoError(t, err)
}

func TestUploadService_Save_UniqueNames(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, "/static/proofs", logger.NewLogger("error"))

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		fh := newFileHeader(t, "receipt.png", []byte("x"))
		_, filename, err := svc.Save("user-1", fh)
		require.NoError(t, err)
		assert.False(t, seen[filename], "生成的文件名出现重复: %s", filename)
		seen[filename] = true
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
	for _, e := range entries {
		assert.True(t, strings.HasPrefix(e.Name(), "proof_user-1_"))
	}
}
