// Minimal end-to-end integration test for the Snow admin API.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/google/uuid"
)

var (
	baseURL = getenv("API_URL", "http://localhost:5000/api")
	ownerID = getenv("OWNER_ID", "1346484101388959774") // seeded owner
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	token := login()

	checkBotSettings(token)
	checkAISettings(token)

	target := uuid.NewString()[:18]
	addBlacklist(token, target)
	checkBlacklist(token, target)
	checkExport(token, target)
	removeBlacklist(token, target)

	checkStats(token)

	fmt.Println("✓ all endpoints passed")
}

// ----------------------------- auth

func login() string {
	var resp struct{ Token string }
	doJSON("POST", "/auth/login", map[string]any{"userId": ownerID}, &resp, http.StatusOK)
	if resp.Token == "" {
		log.Fatal("login: empty token")
	}
	return resp.Token
}

// ----------------------------- settings

func checkBotSettings(tok string) {
	var resp struct{ Username string }
	doAuth(tok, "GET", "/bot/settings", nil, &resp, http.StatusOK)
	if resp.Username == "" {
		log.Fatal("bot settings: empty username")
	}
}

func checkAISettings(tok string) {
	var resp struct{ ResponseSpeed string }
	doAuth(tok, "GET", "/ai/settings", nil, &resp, http.StatusOK)
	if resp.ResponseSpeed == "" {
		log.Fatal("ai settings: empty response speed")
	}
}

// ----------------------------- blacklist

func addBlacklist(tok, id string) {
	doAuth(tok, "POST", "/blacklist", map[string]any{
		"id":       id,
		"username": "smoke-test",
		"reason":   "integration-test " + uuid.NewString(),
	}, nil, http.StatusOK)
}

func checkBlacklist(tok, want string) {
	var entries []struct{ ID string }
	doAuth(tok, "GET", "/blacklist", nil, &entries, http.StatusOK)
	for _, e := range entries {
		if e.ID == want {
			return
		}
	}
	log.Fatal("blacklist: created entry not found")
}

func checkExport(tok, want string) {
	var resp struct {
		ExportID    string `json:"exportId"`
		Blacklisted []struct{ ID string }
	}
	doAuth(tok, "GET", "/blacklist/export", nil, &resp, http.StatusOK)
	if resp.ExportID == "" {
		log.Fatal("export: empty export id")
	}
	for _, e := range resp.Blacklisted {
		if e.ID == want {
			return
		}
	}
	log.Fatal("export: created entry not found")
}

func removeBlacklist(tok, id string) {
	doAuth(tok, "DELETE", "/blacklist/"+id, nil, nil, http.StatusOK)
}

// ----------------------------- stats

func checkStats(tok string) {
	var resp struct{ Blacklisted *int64 }
	doAuth(tok, "GET", "/stats", nil, &resp, http.StatusOK)
	if resp.Blacklisted == nil {
		log.Fatal("stats: missing blacklisted count")
	}
}

// ----------------------------- helpers

func doAuth(token, method, path string, body, out any, want int) {
	doReq(method, path, token, body, out, want)
}

func doJSON(method, path string, body, out any, want int) {
	doReq(method, path, "", body, out, want)
}

func doReq(method, path, token string, body, out any, want int) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			log.Fatalf("%s %s encode: %v", method, path, err)
		}
	}
	req, _ := http.NewRequest(method, baseURL+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	defer res.Body.Close()
	if res.StatusCode != want {
		log.Fatalf("%s %s: want %d got %d", method, path, want, res.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			log.Fatalf("%s %s decode: %v", method, path, err)
		}
	}
}
