package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"
)

// buildInitData builds a valid init_data string using the same algorithm as
// ValidateTelegramInitData.
func buildInitData(t *testing.T, botToken string, fields map[string]string) string {
	t.Helper()

	var parts []string
	for k, v := range fields {
		parts = append(parts, k+"="+v)
	}
	sort.Strings(parts)
	dataString := strings.Join(parts, "\n")

	secret := sha256.Sum256([]byte(botToken))
	h := hmac.New(sha256.New, secret[:])
	h.Write([]byte(dataString))
	hash := hex.EncodeToString(h.Sum(nil))

	vals := url.Values{}
	for k, v := range fields {
		vals.Add(k, v)
	}
	vals.Add("hash", hash)
	return vals.Encode()
}

func TestValidateTelegramInitData(t *testing.T) {
	token := "test-bot-token"
	fields := map[string]string{
		"auth_date": strconv.FormatInt(time.Now().Unix(), 10),
		"user":      `{"id":42,"first_name":"Test"}`,
	}

	initData := buildInitData(t, token, fields)

	values, ok := ValidateTelegramInitData(initData, token)
	if !ok {
		t.Fatal("valid init data rejected")
	}

	id, ok := TelegramUserID(values)
	if !ok || id != 42 {
		t.Fatalf("user id = %d,%v; want 42,true", id, ok)
	}
}

func TestValidateTelegramInitDataTampered(t *testing.T) {
	token := "test-bot-token"
	fields := map[string]string{
		"auth_date": strconv.FormatInt(time.Now().Unix(), 10),
		"user":      `{"id":42}`,
	}

	initData := buildInitData(t, token, fields)
	tampered := strings.Replace(initData, "42", "43", 1)

	if _, ok := ValidateTelegramInitData(tampered, token); ok {
		t.Fatal("tampered init data accepted")
	}
}

func TestValidateTelegramInitDataStale(t *testing.T) {
	token := "test-bot-token"
	fields := map[string]string{
		"auth_date": strconv.FormatInt(time.Now().Add(-2*time.Hour).Unix(), 10),
		"user":      `{"id":42}`,
	}

	initData := buildInitData(t, token, fields)

	if _, ok := ValidateTelegramInitData(initData, token); ok {
		t.Fatal("stale init data accepted")
	}
}

func TestValidateTelegramInitDataWrongToken(t *testing.T) {
	fields := map[string]string{
		"auth_date": strconv.FormatInt(time.Now().Unix(), 10),
		"user":      `{"id":42}`,
	}

	initData := buildInitData(t, "token-one", fields)

	if _, ok := ValidateTelegramInitData(initData, "token-two"); ok {
		t.Fatal("init data signed with another token accepted")
	}
}

func TestTelegramUserIDParsesBlob(t *testing.T) {
	cases := []struct {
		name string
		blob string
		want int64
		ok   bool
	}{
		{"plain", `{"id":42,"first_name":"Test"}`, 42, true},
		{"whitespace around colon", `{ "id" : 42 , "first_name" : "Test" }`, 42, true},
		{"id not first field", `{"first_name":"Test","photo":{"id":999},"last_name":"X"}`, 0, false},
		{"top-level id after nested object", `{"chat":{"id":999},"id":42}`, 42, true},
		{"missing id", `{"first_name":"Test"}`, 0, false},
		{"zero id", `{"id":0}`, 0, false},
		{"not json", `id=42`, 0, false},
		{"empty", ``, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vals := url.Values{}
			if tc.blob != "" {
				vals.Set("user", tc.blob)
			}
			id, ok := TelegramUserID(vals)
			if id != tc.want || ok != tc.ok {
				t.Fatalf("TelegramUserID(%q) = %d,%v; want %d,%v", tc.blob, id, ok, tc.want, tc.ok)
			}
		})
	}
}
