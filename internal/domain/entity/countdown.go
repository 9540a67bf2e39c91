package entity

// Countdown holds the promotional countdown banner settings managed from the
// admin dashboard and shown on the storefront landing page.
type Countdown struct {
	Title      string `json:"title"`
	TargetDate string `json:"target_date"` // YYYY-MM-DD
	TargetTime string `json:"target_time"` // HH:MM
	Visible    bool   `json:"visible"`
}

// DefaultCountdown is served when no countdown has been configured yet.
func DefaultCountdown() Countdown {
	return Countdown{
		Title:      "Limited Time Offer",
		TargetDate: "2026-12-31",
		TargetTime: "23:59",
		Visible:    true,
	}
}
