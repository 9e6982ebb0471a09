package utilities

import (
	"fmt"
	"regexp"
	"time"
)

func PrintASCII() {
	fmt.Println(``)
	fmt.Println(`H A U S N A T I O N`)
	fmt.Println(``)
	return
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateEmailFormat(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidatePasswordFormat(password string) (bool, string, error) {
	requirements := "Password must have a minimum of eight characters, at least one uppercase letter, one lowercase letter and one number."

	if len(password) < 8 {
		return false, requirements, nil
	}

	match, err := regexp.Match(`[A-Z]{1,20}`, []byte(password))
	if err != nil {
		return false, requirements, err
	} else if !match {
		return false, requirements, nil
	}

	match, err = regexp.Match(`[a-z]{1,20}`, []byte(password))
	if err != nil {
		return false, requirements, err
	} else if !match {
		return false, requirements, nil
	}

	match, err = regexp.Match(`[0-9]{1,20}`, []byte(password))
	if err != nil {
		return false, requirements, err
	} else if !match {
		return false, requirements, nil
	}

	return true, requirements, nil
}

var releaseDateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// ParseReleaseDate parses the date string from the catalog provider, which
// comes with day, month or year precision depending on the release.
func ParseReleaseDate(dateStr string) (time.Time, error) {
	var parsedTime time.Time
	var err error

	for _, layout := range releaseDateLayouts {
		parsedTime, err = time.Parse(layout, dateStr)
		if err == nil {
			return parsedTime, nil
		}
	}

	return time.Time{}, err
}
