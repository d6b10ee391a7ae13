package utils

import "golang.org/x/crypto/bcrypt"

// bcrypt 只使用前 72 字节；超出部分截断（与 bcryptjs 一致），不报错
const maxPasswordBytes = 72

func clip(pw string) []byte {
	b := []byte(pw)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// HashPassword 单向哈希（bcrypt，默认 cost）
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(clip(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), clip(pw)) == nil
}
