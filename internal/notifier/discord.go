package notifier

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/gdg-garage/travel-planner-api/internal/models"
)

type Notifier interface {
	NotifyMemberAdded(trip models.Trip, user models.User) error
	NotifyMemberRemoved(trip models.Trip, user models.User) error
}

// MessageSender is the part of a discordgo session the notifier uses.
type MessageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type DiscordNotifier struct {
	session   MessageSender
	channelID string
}

func NewDiscordNotifier(session MessageSender, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

// NewDiscordSession opens a bot session for REST calls. No gateway
// connection is made.
func NewDiscordSession(botToken string) (*discordgo.Session, error) {
	if botToken == "" {
		return nil, fmt.Errorf("discord bot token is empty")
	}
	return discordgo.New("Bot " + botToken)
}

func (n *DiscordNotifier) NotifyMemberAdded(trip models.Trip, user models.User) error {
	return n.send(fmt.Sprintf("🧳 **%s** joined **%s** (%s - %s)",
		displayName(user),
		trip.Title,
		trip.StartDate,
		trip.EndDate,
	))
}

func (n *DiscordNotifier) NotifyMemberRemoved(trip models.Trip, user models.User) error {
	return n.send(fmt.Sprintf("👋 **%s** left **%s**", displayName(user), trip.Title))
}

func (n *DiscordNotifier) send(message string) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}

func displayName(user models.User) string {
	if user.Name != "" {
		return user.Name
	}
	return user.Email
}
