package constants

// 对外API错误消息
// 前端依赖这些英文文案，修改前需同步前端
const (
	// 认证相关错误
	ErrUnauthorized  = "Unauthorized"
	ErrNoToken       = "No token provided"
	ErrInvalidToken  = "Invalid token"
	ErrWrongPassword = "Wrong password"

	// 参数相关错误
	ErrInvalidRequest = "Invalid request"

	// 商品相关错误
	ErrProductNotFound = "Product not found"

	// 订单相关错误
	ErrOrderCreateFailed = "Failed to create order"
	ErrOrdersFetchFailed = "Failed to fetch orders"

	// 上传相关错误
	ErrNoFilePart         = "No file part"
	ErrNoSelectedFile     = "No selected file"
	ErrFileTypeNotAllowed = "File type not allowed"
	ErrUploadFailed       = "Failed to save file"
)
