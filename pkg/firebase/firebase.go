package firebase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// UserInfo 身份令牌验证通过后得到的用户信息
type UserInfo struct {
	UID   string
	Email string
	Name  string
}

// Verifier 身份令牌验证接口
type Verifier interface {
	VerifyIDToken(idToken string) (*UserInfo, error)
}

// Client Firebase身份验证客户端
// 通过identitytoolkit REST接口验证前端提交的ID Token
type Client struct {
	APIKey     string
	APIServer  string
	httpClient *http.Client
}

// NewClient 创建Firebase身份验证客户端
func NewClient(apiKey, apiServer string) *Client {
	return &Client{
		APIKey:     apiKey,
		APIServer:  apiServer,
		httpClient: &http.Client{},
	}
}

// lookupResponse accounts:lookup 响应
type lookupResponse struct {
	Users []struct {
		LocalID     string `json:"localId"`
		Email       string `json:"email"`
		DisplayName string `json:"displayName"`
	} `json:"users"`
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// VerifyIDToken 验证ID Token并返回对应的用户信息
func (c *Client) VerifyIDToken(idToken string) (*UserInfo, error) {
	// 构建请求URL
	apiURL := fmt.Sprintf("%s/v1/accounts:lookup?key=%s", c.APIServer, c.APIKey)

	// 构建请求体
	payload, err := json.Marshal(map[string]string{"idToken": idToken})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	// 发送请求
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// 读取响应
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// 解析响应
	var lookupResp lookupResponse
	if err := json.Unmarshal(body, &lookupResp); err != nil {
		return nil, err
	}

	// 令牌无效时接口返回错误信息（如INVALID_ID_TOKEN）
	if resp.StatusCode != http.StatusOK {
		if lookupResp.Error.Message != "" {
			return nil, errors.New(lookupResp.Error.Message)
		}
		return nil, fmt.Errorf("身份验证请求失败: %d", resp.StatusCode)
	}

	if len(lookupResp.Users) == 0 {
		return nil, errors.New("令牌未关联任何用户")
	}

	user := lookupResp.Users[0]
	return &UserInfo{
		UID:   user.LocalID,
		Email: user.Email,
		Name:  user.DisplayName,
	}, nil
}
