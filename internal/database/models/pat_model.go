package models

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

type PAT struct {
	ID          uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time `json:"createdAt"`
	UserID      uuid.UUID `json:"userId" gorm:"type:uuid;not null"`
	Token       string    `json:"-" gorm:"type:text;unique;not null"`
	Description string    `json:"description" gorm:"type:text"`
	// space separated list, e.g. "manage reports"
	Scopes string `json:"scopes" gorm:"type:text;default:manage"`
}

func (p PAT) TableName() string {
	return "pats"
}

func (p PAT) HashToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))
	// make it base64
	return base64.StdEncoding.EncodeToString(hasher.Sum(nil))
}

func (p PAT) GetUserID() string {
	return p.UserID.String()
}

func (p PAT) ScopeList() []string {
	return strings.Fields(p.Scopes)
}

// NewPAT mints a token and returns the model holding only its hash. The
// plaintext token is returned exactly once and never stored.
func NewPAT(userID uuid.UUID, description string, scopes []string) (PAT, string) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		panic(err)
	}
	token := hex.EncodeToString(raw)

	pat := PAT{
		UserID:      userID,
		Description: description,
		Scopes:      strings.Join(scopes, " "),
	}
	pat.Token = pat.HashToken(token)
	return pat, token
}
