package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
)

var (
	notificationsCategory   string
	notificationsUnreadOnly bool
)

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notif"},
	Short:   "Browse the notification centre",
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications",
	Long: `List notifications, most recent first.

Categories: all, risk, system, ai`,
	Args: cobra.NoArgs,
	RunE: runNotificationsList,
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read [id]",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotificationsRead,
}

var notificationsReadAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark every notification as read",
	Args:  cobra.NoArgs,
	RunE:  runNotificationsReadAll,
}

var notificationsOpenCmd = &cobra.Command{
	Use:   "open [id]",
	Short: "Open a notification and print the page it links to",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotificationsOpen,
}

func init() {
	notificationsListCmd.Flags().StringVarP(&notificationsCategory, "category", "c", "all", "category to show")
	notificationsListCmd.Flags().BoolVar(&notificationsUnreadOnly, "unread", false, "show unread only")
	notificationsCmd.AddCommand(notificationsListCmd)
	notificationsCmd.AddCommand(notificationsReadCmd)
	notificationsCmd.AddCommand(notificationsReadAllCmd)
	notificationsCmd.AddCommand(notificationsOpenCmd)
	rootCmd.AddCommand(notificationsCmd)
}

func runNotificationsList(cmd *cobra.Command, _ []string) error {
	if notificationService == nil {
		return errors.New("notification service not configured")
	}

	category := domain.NotificationCategory(notificationsCategory)
	if !category.IsValid() {
		return fmt.Errorf("unknown category %q (expected all, risk, system or ai)", notificationsCategory)
	}

	items := notificationService.List(category)
	cmd.Printf("%s · %d unread\n\n", category.Label(), notificationService.UnreadCount())

	shown := 0
	for _, n := range items {
		if notificationsUnreadOnly && n.Read {
			continue
		}
		marker := " "
		if !n.Read {
			marker = "●"
		}
		cmd.Printf("%s [%d] %s  (%s)\n", marker, n.ID, n.Title, n.Time)
		cmd.Printf("      %s\n", n.Description)
		shown++
	}

	if shown == 0 {
		cmd.Println("No notifications.")
	}
	return nil
}

func runNotificationsRead(cmd *cobra.Command, args []string) error {
	if notificationService == nil {
		return errors.New("notification service not configured")
	}

	id, err := parseNotificationID(args[0])
	if err != nil {
		return err
	}

	if err := notificationService.MarkRead(id); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	cmd.Printf("%d unread\n", notificationService.UnreadCount())
	return nil
}

func runNotificationsReadAll(cmd *cobra.Command, _ []string) error {
	if notificationService == nil {
		return errors.New("notification service not configured")
	}

	if err := notificationService.MarkAllRead(); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	cmd.Println("All notifications marked as read.")
	return nil
}

func runNotificationsOpen(cmd *cobra.Command, args []string) error {
	if notificationService == nil {
		return errors.New("notification service not configured")
	}

	id, err := parseNotificationID(args[0])
	if err != nil {
		return err
	}

	route, err := notificationService.Open(id)
	if err != nil {
		return fmt.Errorf("failed to open notification: %w", err)
	}

	cmd.Println(route)
	return nil
}

func parseNotificationID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid notification id %q: %w", arg, domain.ErrInvalidInput)
	}
	return id, nil
}
