package commands

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/frostworks/snowbot/src/bot/components/economy"
	"github.com/frostworks/snowbot/src/types"
)

// fakeSession records outbound Discord calls instead of performing them.
type fakeSession struct {
	perms    int64
	permsErr error

	channelMessages []*discordgo.Message
	guild           *discordgo.Guild

	replies     []string
	embeds      []*discordgo.MessageEmbed
	bulkDeleted []string
	kicked      []string
	banned      []string
}

func (f *fakeSession) ChannelMessageSend(channelID, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.replies = append(f.replies, content)
	return &discordgo.Message{}, nil
}

func (f *fakeSession) ChannelMessageSendReply(channelID, content string, _ *discordgo.MessageReference, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.replies = append(f.replies, content)
	return &discordgo.Message{}, nil
}

func (f *fakeSession) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.embeds = append(f.embeds, embed)
	return &discordgo.Message{}, nil
}

func (f *fakeSession) ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, _ ...discordgo.RequestOption) ([]*discordgo.Message, error) {
	if limit < len(f.channelMessages) {
		return f.channelMessages[:limit], nil
	}
	return f.channelMessages, nil
}

func (f *fakeSession) ChannelMessagesBulkDelete(channelID string, messages []string, _ ...discordgo.RequestOption) error {
	f.bulkDeleted = append(f.bulkDeleted, messages...)
	return nil
}

func (f *fakeSession) ChannelTyping(channelID string, _ ...discordgo.RequestOption) error {
	return nil
}

func (f *fakeSession) GuildMemberDeleteWithReason(guildID, userID, reason string, _ ...discordgo.RequestOption) error {
	f.kicked = append(f.kicked, userID)
	return nil
}

func (f *fakeSession) GuildBanCreateWithReason(guildID, userID, reason string, days int, _ ...discordgo.RequestOption) error {
	f.banned = append(f.banned, userID)
	return nil
}

func (f *fakeSession) UserChannelPermissions(userID, channelID string, _ ...discordgo.RequestOption) (int64, error) {
	return f.perms, f.permsErr
}

func (f *fakeSession) Guild(guildID string, _ ...discordgo.RequestOption) (*discordgo.Guild, error) {
	return f.guild, nil
}

type fakeStatsStore struct {
	stats *types.BotStats
}

func (f *fakeStatsStore) GetBotStats() (*types.BotStats, error) {
	return f.stats, nil
}

func newTestContext(s *fakeSession, args []string) *Context {
	return &Context{
		Session: s,
		Store:   &fakeStatsStore{stats: &types.BotStats{}},
		Ledger:  economy.NewLedger(),
		Message: &discordgo.MessageCreate{Message: &discordgo.Message{
			ID:        "900",
			ChannelID: "chan",
			GuildID:   "guild",
			Author:    &discordgo.User{ID: "42", Username: "frosty"},
		}},
		Args:    args,
		Started: time.Now(),
	}
}

func TestLookupResolvesAliases(t *testing.T) {
	r := NewRegistry()

	cases := map[string]string{
		"balance": "balance",
		"bal":     "balance",
		"purge":   "clear",
		"clear":   "clear",
		"8ball":   "8ball",
	}
	for token, want := range cases {
		cmd, ok := r.Lookup(token)
		if !ok {
			t.Fatalf("Lookup(%q) not found", token)
		}
		if cmd.Name != want {
			t.Fatalf("Lookup(%q) = %q, want %q", token, cmd.Name, want)
		}
	}

	if _, ok := r.Lookup("frobnicate"); ok {
		t.Fatal("expected unknown token to miss")
	}
}

func TestDispatchChecksPermissionBeforeTarget(t *testing.T) {
	r := NewRegistry()
	cmd, _ := r.Lookup("ban")

	// no ban permission AND no mention: the permission failure must win
	s := &fakeSession{perms: 0}
	ctx := newTestContext(s, nil)
	r.Dispatch(cmd, ctx)

	if len(s.replies) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(s.replies))
	}
	if !strings.Contains(s.replies[0], "permissions") {
		t.Fatalf("expected permission denial, got %q", s.replies[0])
	}
	if len(s.banned) != 0 {
		t.Fatal("ban executed despite missing permission")
	}
}

func TestDispatchPermissionLookupFailureDenies(t *testing.T) {
	r := NewRegistry()
	cmd, _ := r.Lookup("kick")

	s := &fakeSession{permsErr: fmt.Errorf("boom")}
	ctx := newTestContext(s, nil)
	r.Dispatch(cmd, ctx)

	if len(s.replies) != 1 || !strings.Contains(s.replies[0], "permissions") {
		t.Fatalf("expected permission denial, got %v", s.replies)
	}
}

func TestBanRequiresMention(t *testing.T) {
	r := NewRegistry()
	cmd, _ := r.Lookup("ban")

	s := &fakeSession{perms: discordgo.PermissionBanMembers}
	ctx := newTestContext(s, nil)
	r.Dispatch(cmd, ctx)

	if len(s.replies) != 1 || !strings.Contains(s.replies[0], "mention") {
		t.Fatalf("expected mention prompt, got %v", s.replies)
	}
}

func TestBanHappyPath(t *testing.T) {
	r := NewRegistry()
	cmd, _ := r.Lookup("ban")

	s := &fakeSession{perms: discordgo.PermissionBanMembers}
	ctx := newTestContext(s, []string{"@target", "being", "mean"})
	ctx.Message.Mentions = []*discordgo.User{{ID: "77", Username: "target"}}
	r.Dispatch(cmd, ctx)

	if len(s.banned) != 1 || s.banned[0] != "77" {
		t.Fatalf("expected user 77 banned, got %v", s.banned)
	}
	if len(s.embeds) != 1 {
		t.Fatalf("expected confirmation embed, got %d", len(s.embeds))
	}
	if got := s.embeds[0].Fields[0].Value; got != "being mean" {
		t.Fatalf("expected joined reason, got %q", got)
	}
}

func TestDailyStaysInRange(t *testing.T) {
	r := NewRegistry()
	cmd, _ := r.Lookup("daily")

	for i := 0; i < 200; i++ {
		s := &fakeSession{}
		ctx := newTestContext(s, nil)
		before := ctx.Ledger.Balance("42")
		r.Dispatch(cmd, ctx)
		earned := ctx.Ledger.Balance("42") - before
		if earned < 50 || earned > 150 {
			t.Fatalf("daily payout %d outside [50,150]", earned)
		}
	}
}

func TestWorkStaysInRange(t *testing.T) {
	r := NewRegistry()
	cmd, _ := r.Lookup("work")

	for i := 0; i < 200; i++ {
		s := &fakeSession{}
		ctx := newTestContext(s, nil)
		before := ctx.Ledger.Balance("42")
		r.Dispatch(cmd, ctx)
		earned := ctx.Ledger.Balance("42") - before
		if earned < 25 || earned > 100 {
			t.Fatalf("work payout %d outside [25,100]", earned)
		}
	}
}

func TestClearRejectsOutOfRangeCounts(t *testing.T) {
	r := NewRegistry()
	cmd, _ := r.Lookup("clear")

	for _, args := range [][]string{nil, {"0"}, {"101"}, {"-3"}, {"potato"}} {
		s := &fakeSession{perms: discordgo.PermissionManageMessages}
		ctx := newTestContext(s, args)
		r.Dispatch(cmd, ctx)

		if len(s.bulkDeleted) != 0 {
			t.Fatalf("args %v triggered a delete", args)
		}
		if len(s.replies) != 1 || !strings.Contains(s.replies[0], "between 1 and 100") {
			t.Fatalf("args %v: expected range error, got %v", args, s.replies)
		}
	}
}

func TestClearDeletesRequestedPlusTrigger(t *testing.T) {
	r := NewRegistry()
	cmd, _ := r.Lookup("clear")

	msgs := make([]*discordgo.Message, 10)
	for i := range msgs {
		msgs[i] = &discordgo.Message{ID: fmt.Sprintf("m%d", i)}
	}

	s := &fakeSession{perms: discordgo.PermissionManageMessages, channelMessages: msgs}
	ctx := newTestContext(s, []string{"5"})
	r.Dispatch(cmd, ctx)

	// 5 requested plus the triggering message
	if len(s.bulkDeleted) != 6 {
		t.Fatalf("expected 6 ids deleted, got %d", len(s.bulkDeleted))
	}
	if len(s.embeds) != 1 || !strings.Contains(s.embeds[0].Description, "**5**") {
		t.Fatalf("expected confirmation for 5 messages, got %v", s.embeds)
	}
}

func TestEightBallRequiresQuestion(t *testing.T) {
	r := NewRegistry()
	cmd, _ := r.Lookup("8ball")

	s := &fakeSession{}
	ctx := newTestContext(s, nil)
	r.Dispatch(cmd, ctx)

	if len(s.replies) != 1 || !strings.Contains(s.replies[0], "question") {
		t.Fatalf("expected question prompt, got %v", s.replies)
	}
}

func TestSnowballRequiresMention(t *testing.T) {
	r := NewRegistry()
	cmd, _ := r.Lookup("snowball")

	s := &fakeSession{}
	ctx := newTestContext(s, nil)
	r.Dispatch(cmd, ctx)

	if len(s.replies) != 1 || !strings.Contains(s.replies[0], "Mention someone") {
		t.Fatalf("expected mention prompt, got %v", s.replies)
	}
}

func TestModerationReason(t *testing.T) {
	if got := moderationReason([]string{"@user"}); got != "No reason provided" {
		t.Fatalf("got %q", got)
	}
	if got := moderationReason([]string{"@user", "spamming", "invites"}); got != "spamming invites" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatUptime(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "30s"},
		{5*time.Minute + 12*time.Second, "5m 12s"},
		{3*time.Hour + 4*time.Minute, "3h 4m"},
		{50 * time.Hour, "2d 2h"},
	}
	for _, tc := range cases {
		if got := formatUptime(tc.d); got != tc.want {
			t.Fatalf("formatUptime(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}
