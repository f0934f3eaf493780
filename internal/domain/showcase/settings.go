package showcase

import (
	"fmt"
	"time"
)

// ServiceSettings is the singleton row controlling the public services section.
type ServiceSettings struct {
	id                  uint
	maxDisplay          int
	enableFlipAnimation bool
	autoRotate          bool
	autoRotateInterval  int
	updatedAt           time.Time
}

const (
	DefaultServiceMaxDisplay  = 3
	DefaultAutoRotateInterval = 5000
	MinAutoRotateInterval     = 1000
)

// DefaultServiceSettings returns the row used when none exists yet.
func DefaultServiceSettings() *ServiceSettings {
	return &ServiceSettings{
		maxDisplay:          DefaultServiceMaxDisplay,
		enableFlipAnimation: true,
		autoRotate:          false,
		autoRotateInterval:  DefaultAutoRotateInterval,
		updatedAt:           time.Now(),
	}
}

func ReconstructServiceSettings(id uint, maxDisplay int, enableFlipAnimation, autoRotate bool, autoRotateInterval int, updatedAt time.Time) *ServiceSettings {
	return &ServiceSettings{
		id:                  id,
		maxDisplay:          maxDisplay,
		enableFlipAnimation: enableFlipAnimation,
		autoRotate:          autoRotate,
		autoRotateInterval:  autoRotateInterval,
		updatedAt:           updatedAt,
	}
}

func (s *ServiceSettings) ID() uint                  { return s.id }
func (s *ServiceSettings) MaxDisplay() int           { return s.maxDisplay }
func (s *ServiceSettings) EnableFlipAnimation() bool { return s.enableFlipAnimation }
func (s *ServiceSettings) AutoRotate() bool          { return s.autoRotate }
func (s *ServiceSettings) AutoRotateInterval() int   { return s.autoRotateInterval }
func (s *ServiceSettings) UpdatedAt() time.Time      { return s.updatedAt }

func (s *ServiceSettings) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("service settings ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("service settings ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *ServiceSettings) Update(maxDisplay int, enableFlipAnimation, autoRotate bool, autoRotateInterval int) error {
	if maxDisplay < 1 {
		return fmt.Errorf("max display must be at least 1")
	}
	if autoRotateInterval < MinAutoRotateInterval {
		return fmt.Errorf("auto rotate interval must be at least %dms", MinAutoRotateInterval)
	}
	s.maxDisplay = maxDisplay
	s.enableFlipAnimation = enableFlipAnimation
	s.autoRotate = autoRotate
	s.autoRotateInterval = autoRotateInterval
	s.updatedAt = time.Now()
	return nil
}
