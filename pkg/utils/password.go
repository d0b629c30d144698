package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword 用 bcrypt 加盐散列；cost 取默认值，登录路径可接受
func HashPassword(plain string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(h)
}

// CheckPassword 比较明文与存储的散列，任何解析失败都按不匹配处理
func CheckPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
