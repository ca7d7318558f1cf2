package services

import (
	"fmt"
	"strings"

	"amenities-dashboard/dao/redis"
	"amenities-dashboard/models"
)

// SessionService loads and stores the map state of one user.
type SessionService struct {
	sessionDao *redis.RedisSessionDAO
}

func NewSessionService(sessionDao *redis.RedisSessionDAO) *SessionService {
	return &SessionService{sessionDao: sessionDao}
}

// Load returns the stored session, or a fresh uninitialized one with map defaults.
func (ss *SessionService) Load(id string) (*models.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: missing session id", ErrInvalidRequest)
	}
	s, err := ss.sessionDao.GetSession(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = &models.Session{ID: id, Center: models.DefaultCenter, Zoom: models.DefaultZoom}
	}
	return s, nil
}

func (ss *SessionService) Save(s *models.Session) error {
	return ss.sessionDao.SaveSession(s)
}
