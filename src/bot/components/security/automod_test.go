package security

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/frostworks/snowbot/src/types"
)

func TestMatches(t *testing.T) {
	cases := []struct {
		command string
		args    []string
		want    bool
	}{
		{"hack", nil, true},
		{"hackserver", nil, true},
		{"ddos", nil, true},
		{"exploit", nil, true},
		{"admin", nil, true},
		// substring matching flags anything containing a keyword
		{"administrator", nil, true},
		{"bot", []string{"token"}, true},
		{"bot", []string{"give", "token"}, true},
		{"bot", []string{"info"}, false},
		{"balance", nil, false},
		{"help", nil, false},
	}
	for _, tc := range cases {
		if got := Matches(tc.command, tc.args); got != tc.want {
			t.Fatalf("Matches(%q, %v) = %v, want %v", tc.command, tc.args, got, tc.want)
		}
	}
}

type fakeStore struct {
	listed    map[string]bool
	added     []*types.BlacklistedUser
	increment int

	lookupErr error
	addErr    error
}

func (f *fakeStore) IsBlacklisted(id string) (bool, error) {
	return f.listed[id], f.lookupErr
}

func (f *fakeStore) AddToBlacklist(entry *types.BlacklistedUser) (bool, error) {
	if f.addErr != nil {
		return false, f.addErr
	}
	if f.listed[entry.ID] {
		return false, nil
	}
	if f.listed == nil {
		f.listed = make(map[string]bool)
	}
	f.listed[entry.ID] = true
	f.added = append(f.added, entry)
	return true, nil
}

func (f *fakeStore) IncrementBlacklisted() error {
	f.increment++
	return nil
}

func TestEnforceBlacklistsOnce(t *testing.T) {
	store := &fakeStore{}
	am := NewAutoMod(store)
	author := &discordgo.User{ID: "66", Username: "villain"}

	if !am.Enforce(author) {
		t.Fatal("first Enforce should create an entry")
	}
	if am.Enforce(author) {
		t.Fatal("second Enforce should be a no-op")
	}

	if len(store.added) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(store.added))
	}
	if store.increment != 1 {
		t.Fatalf("expected 1 stats bump, got %d", store.increment)
	}
	if store.added[0].Reason != "Auto-detected abuse/hacking attempt" {
		t.Fatalf("unexpected reason %q", store.added[0].Reason)
	}
}

func TestEnforceSwallowsStoreErrors(t *testing.T) {
	am := NewAutoMod(&fakeStore{lookupErr: errors.New("db down")})
	if am.Enforce(&discordgo.User{ID: "66"}) {
		t.Fatal("lookup failure must not report a new entry")
	}

	am = NewAutoMod(&fakeStore{addErr: errors.New("db down")})
	if am.Enforce(&discordgo.User{ID: "66"}) {
		t.Fatal("insert failure must not report a new entry")
	}
}

func TestAlertShape(t *testing.T) {
	embed := Alert()
	if embed.Color != 0xFF0000 {
		t.Fatalf("unexpected color %#x", embed.Color)
	}
	if embed.Title == "" || embed.Description == "" {
		t.Fatal("alert embed missing text")
	}
}
