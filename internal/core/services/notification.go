package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driving"
	"github.com/custodia-labs/sentinel-cli/internal/logger"
)

// Ensure NotificationService implements the interface.
var _ driving.NotificationService = (*NotificationService)(nil)

// NotificationsReadKey is the storage key holding the ids of read notifications.
const NotificationsReadKey = "sentinel_notifications_read"

// NotificationService holds the notification centre entries and their read flags.
type NotificationService struct {
	store     driven.KeyValueStore
	navigator driven.Navigator

	mu    sync.RWMutex
	items []domain.Notification
}

// NewNotificationService loads the catalog notifications.
// store and navigator are optional. With a store, read flags survive restarts.
func NewNotificationService(
	catalog driven.Catalog,
	store driven.KeyValueStore,
	navigator driven.Navigator,
) *NotificationService {
	s := &NotificationService{
		store:     store,
		navigator: navigator,
		items:     catalog.Notifications(),
	}
	s.loadReadIDs()
	return s
}

// List returns notifications in a category, most recent first.
func (s *NotificationService) List(category domain.NotificationCategory) []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Notification, 0, len(s.items))
	for _, n := range s.items {
		if category == "" || category == domain.CategoryAll || n.Category == category {
			result = append(result, n)
		}
	}
	return result
}

// MarkRead marks one notification read. Unknown ids are ignored.
func (s *NotificationService) MarkRead(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 || s.items[i].Read {
		return nil
	}
	s.items[i].Read = true
	if err := s.persistLocked(); err != nil {
		s.items[i].Read = false
		return err
	}
	return nil
}

// MarkAllRead marks every notification read.
func (s *NotificationService) MarkAllRead() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var flipped []int
	for i := range s.items {
		if !s.items[i].Read {
			s.items[i].Read = true
			flipped = append(flipped, i)
		}
	}
	if len(flipped) == 0 {
		return nil
	}
	if err := s.persistLocked(); err != nil {
		for _, i := range flipped {
			s.items[i].Read = false
		}
		return err
	}
	return nil
}

// UnreadCount returns the number of unread notifications.
func (s *NotificationService) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// Open marks a notification read and navigates to its link.
func (s *NotificationService) Open(id int) (string, error) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return "", fmt.Errorf("notification %d: %w", id, domain.ErrNotFound)
	}
	var persistErr error
	if !s.items[i].Read {
		s.items[i].Read = true
		if persistErr = s.persistLocked(); persistErr != nil {
			s.items[i].Read = false
		}
	}
	link := s.items[i].Link
	s.mu.Unlock()

	if persistErr != nil {
		logger.Warn("notifications: %v", persistErr)
	}

	if s.navigator != nil {
		if err := s.navigator.Navigate(link); err != nil {
			return link, fmt.Errorf("navigate to %s: %w", link, err)
		}
	}
	return link, nil
}

func (s *NotificationService) indexLocked(id int) int {
	for i, n := range s.items {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// loadReadIDs applies persisted read flags. Missing or malformed data is ignored.
func (s *NotificationService) loadReadIDs() {
	if s.store == nil {
		return
	}

	raw, ok, err := s.store.Get(NotificationsReadKey)
	if err != nil {
		logger.Warn("notifications: reading read state: %v", err)
		return
	}
	if !ok {
		return
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		logger.Warn("notifications: ignoring malformed read state: %v", err)
		return
	}

	read := make(map[int]bool, len(ids))
	for _, id := range ids {
		read[id] = true
	}
	for i := range s.items {
		if read[s.items[i].ID] {
			s.items[i].Read = true
		}
	}
}

func (s *NotificationService) persistLocked() error {
	if s.store == nil {
		return nil
	}

	ids := make([]int, 0, len(s.items))
	for _, n := range s.items {
		if n.Read {
			ids = append(ids, n.ID)
		}
	}
	sort.Ints(ids)

	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encoding read state: %w", err)
	}
	if err := s.store.Set(NotificationsReadKey, string(data)); err != nil {
		return fmt.Errorf("saving read state: %w", err)
	}
	return nil
}
