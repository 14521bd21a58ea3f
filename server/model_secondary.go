package server

import "fmt"

func (s ClientSessionState) Name() string {
	switch s {
	case CS_NEW:
		return "CS_NEW"
	case CS_OPEN:
		return "CS_OPEN"
	case CS_ERR:
		return "CS_ERR"
	case CS_OVER:
		return "CS_OVER"
	default:
		return fmt.Sprintf("n/a:%d", s)
	}
}
