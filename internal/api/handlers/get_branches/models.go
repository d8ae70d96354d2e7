package get_branches

import (
	"time"

	"github.com/tyrehub/appointment-service/internal/domain"
)

// DayHoursResponse renders one weekday's opening window.
type DayHoursResponse struct {
	Weekday string `json:"weekday"`
	Closed  bool   `json:"closed"`
	Open    string `json:"open,omitempty"`
	Close   string `json:"close,omitempty"`
}

type BranchResponse struct {
	ID       int64              `json:"id"`
	Name     string             `json:"name"`
	Address  string             `json:"address"`
	City     string             `json:"city"`
	Province string             `json:"province"`
	Phone    *string            `json:"phone,omitempty"`
	WhatsApp *string            `json:"whatsapp,omitempty"`
	Hours    []DayHoursResponse `json:"hours"`
}

type BranchListResponse struct {
	Branches []BranchResponse `json:"branches"`
}

func fromDomainBranch(b domain.Branch) BranchResponse {
	resp := BranchResponse{
		ID:       b.ID,
		Name:     b.Name,
		Address:  b.Address,
		City:     b.City,
		Province: b.Province,
		Phone:    b.Phone,
		WhatsApp: b.WhatsApp,
		Hours:    make([]DayHoursResponse, 0, 7),
	}

	// Monday-first rendering; time.Weekday starts at Sunday.
	for i := 1; i <= 7; i++ {
		weekday := time.Weekday(i % 7)
		hours := b.HoursFor(weekday)
		day := DayHoursResponse{
			Weekday: weekday.String(),
			Closed:  hours.Closed,
		}
		if !hours.Closed {
			day.Open = hours.Open.String()
			day.Close = hours.Close.String()
		}
		resp.Hours = append(resp.Hours, day)
	}

	return resp
}

func fromDomainBranchList(branches []domain.Branch) BranchListResponse {
	resp := BranchListResponse{Branches: make([]BranchResponse, 0, len(branches))}
	for _, b := range branches {
		resp.Branches = append(resp.Branches, fromDomainBranch(b))
	}
	return resp
}
