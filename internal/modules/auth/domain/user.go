package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// SlotName is the persistence slot holding the signed-in user.
const SlotName = "lotus-user"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// DefaultName is the local part of email.
func DefaultName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

func DecodeUser(blob string) (User, error) {
	var u User
	if err := json.Unmarshal([]byte(blob), &u); err != nil {
		return User{}, fmt.Errorf("decode user: %w", err)
	}
	if strings.TrimSpace(u.Email) == "" {
		return User{}, fmt.Errorf("decode user: email is missing")
	}
	return u, nil
}

func EncodeUser(u User) (string, error) {
	raw, err := json.Marshal(u)
	if err != nil {
		return "", fmt.Errorf("encode user: %w", err)
	}
	return string(raw), nil
}
