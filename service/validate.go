package service

import (
	"Blog/pkg/errs"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	userNameMinLen = 2
	userNameMaxLen = 50
	passwordMinLen = 3

	titleMinLen   = 3
	titleMaxLen   = 100
	contentMinLen = 10
	contentMaxLen = 5000
)

// 长度一律按字符计
func validateUserName(userName string) error {
	if strings.TrimSpace(userName) == "" {
		return errs.Validation("userName", "Username cannot be null or empty")
	}
	n := utf8.RuneCountInString(userName)
	if n < userNameMinLen {
		return errs.Validation("userName", "Username must be at least 2 characters long")
	}
	if n > userNameMaxLen {
		return errs.Validation("userName", "Username cannot exceed 50 characters")
	}
	for _, r := range userName {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return errs.Validation("userName", "Username can only contain letters and digits")
		}
	}
	return nil
}

func validatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return errs.Validation("password", "Password cannot be null or empty")
	}
	if utf8.RuneCountInString(password) < passwordMinLen {
		return errs.Validation("password", "Password must be at least 3 characters long")
	}
	return nil
}

func validatePostInput(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return errs.Validation("title", "Title cannot be null or empty")
	}
	if n := utf8.RuneCountInString(title); n < titleMinLen {
		return errs.Validation("title", "Title must be at least 3 characters long")
	} else if n > titleMaxLen {
		return errs.Validation("title", "Title cannot exceed 100 characters")
	}

	if strings.TrimSpace(content) == "" {
		return errs.Validation("content", "Content cannot be null or empty")
	}
	if n := utf8.RuneCountInString(content); n < contentMinLen {
		return errs.Validation("content", "Content must be at least 10 characters long")
	} else if n > contentMaxLen {
		return errs.Validation("content", "Content cannot exceed 5000 characters")
	}
	return nil
}
