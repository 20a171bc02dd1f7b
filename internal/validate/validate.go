package validate

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinPasswordLen = 8
	MaxPasswordLen = 72
	MaxUsernameLen = 64
	MaxPostLen     = 5000
)

func SetupForm(name, password string) error {
	return errors.Join(Username(name), Password(password))
}

func Password(password string) error {
	l := len(password)
	switch {
	case l == 0:
		return errors.New("empty password")
	case l < MinPasswordLen:
		return fmt.Errorf("password too short; min %d characters", MinPasswordLen)
	case l > MaxPasswordLen:
		return fmt.Errorf("password too long; max %d characters", MaxPasswordLen)
	}
	return nil
}

func Username(username string) error {
	if l := len(username); l == 0 {
		return errors.New("empty username")
	} else if l > MaxUsernameLen {
		return fmt.Errorf("username too long; max %d characters", MaxUsernameLen)
	}
	if strings.ContainsAny(username, "@ /") {
		return errors.New("username contains invalid characters")
	}
	return nil
}

func PostContent(content string) error {
	if l := len(content); l == 0 {
		return errors.New("empty post")
	} else if l > MaxPostLen {
		return fmt.Errorf("post too long; max %d characters", MaxPostLen)
	}
	return nil
}
