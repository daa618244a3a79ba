package util

const (
	// TokenCookie 前端保存 JWT 的 cookie 名
	TokenCookie = "token"
	// ContextUserKey gin.Context 中保存 *Claims 的键
	ContextUserKey = "user"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const MimeJSON = "application/json"
