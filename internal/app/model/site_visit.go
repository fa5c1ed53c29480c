package model

import "time"

// SiteVisit counts sessions per client-generated visitor id
type SiteVisit struct {
	VisitorID  string    `gorm:"primarykey;column:visitor_id;type:varchar(64)" json:"visitorId"`
	FirstSeen  time.Time `gorm:"column:first_seen" json:"firstSeen"`
	LastSeen   time.Time `gorm:"column:last_seen" json:"lastSeen"`
	VisitCount int64     `gorm:"column:visit_count" json:"visitCount"`
}

func (SiteVisit) TableName() string {
	return "site_visits"
}
