package client

import (
	"fmt"
	"sort"
	"strings"

	"p2p/config"
	"p2p/repository"

	"github.com/bwmarrin/discordgo"
)

type DiscordClient struct {
	session   *discordgo.Session
	channelId string
}

func NewDiscordClient() (*DiscordClient, error) {
	cfg := config.Env()
	if cfg.DiscordBotToken == "" || cfg.DiscordChannelID == "" {
		return nil, fmt.Errorf("discord announcements are not configured")
	}
	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		return nil, err
	}
	return &DiscordClient{session: session, channelId: cfg.DiscordChannelID}, nil
}

// AnnounceSchedule posts a per-round summary of a freshly published
// schedule to the event channel.
func (c *DiscordClient) AnnounceSchedule(meetings []*repository.Meeting) error {
	counts := make(map[int]int)
	times := make(map[int]string)
	for _, meeting := range meetings {
		counts[meeting.Round]++
		times[meeting.Round] = meeting.ScheduledTime
	}
	rounds := make([]int, 0, len(counts))
	for round := range counts {
		rounds = append(rounds, round)
	}
	sort.Ints(rounds)

	var b strings.Builder
	fmt.Fprintf(&b, "📋 Planning publié : %d rendez-vous\n", len(meetings))
	for _, round := range rounds {
		fmt.Fprintf(&b, "Round %d (%s) : %d tables\n", round, times[round], counts[round])
	}
	_, err := c.session.ChannelMessageSend(c.channelId, b.String())
	return err
}
