package data

import "testing"

func TestEnsureParam(t *testing.T) {
	cases := []struct {
		dsn  string
		key  string
		val  string
		want string
	}{
		{"user:pass@tcp(db:3306)/snowbot", "parseTime", "true", "user:pass@tcp(db:3306)/snowbot?parseTime=true"},
		{"user:pass@tcp(db:3306)/snowbot?charset=utf8mb4", "parseTime", "true", "user:pass@tcp(db:3306)/snowbot?charset=utf8mb4&parseTime=true"},
		{"user:pass@tcp(db:3306)/snowbot?parseTime=false", "parseTime", "true", "user:pass@tcp(db:3306)/snowbot?parseTime=false"},
	}
	for _, tc := range cases {
		if got := ensureParam(tc.dsn, tc.key, tc.val); got != tc.want {
			t.Fatalf("ensureParam(%q, %q, %q) = %q, want %q", tc.dsn, tc.key, tc.val, got, tc.want)
		}
	}
}
