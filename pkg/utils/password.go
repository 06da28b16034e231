package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt 自带随机盐，每个用户的哈希都不同
func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
