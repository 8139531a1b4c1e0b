package operation

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Username  string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"size:128;not null" json:"-"`
	Level     int       `gorm:"default:1;not null" json:"level"`
	Flights   []*Flight `gorm:"foreignKey:UserID;references:ID" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Flight is one logbook entry. Duration fields are decimal hours, the date
// is kept as an ISO "2006-01-02" string so range filters and sorting stay
// plain string comparisons across all supported databases.
type Flight struct {
	ID     uint `gorm:"primarykey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user"`

	Date         string `gorm:"size:10;index;not null" json:"date"`
	Aircraft     string `gorm:"size:16;index" json:"aircraft"`
	WaypointFrom string `gorm:"size:16" json:"waypoint_from"`
	WaypointTo   string `gorm:"size:16" json:"waypoint_to"`
	Route        string `gorm:"type:text" json:"route"`

	HobbsStart float64 `gorm:"default:0" json:"hobbs_start"`
	HobbsEnd   float64 `gorm:"default:0" json:"hobbs_end"`
	TachStart  float64 `gorm:"default:0" json:"tach_start"`
	TachEnd    float64 `gorm:"default:0" json:"tach_end"`

	TimeTotal float64 `gorm:"default:0" json:"time_total"`
	TimePic   float64 `gorm:"default:0" json:"time_pic"`
	TimeSic   float64 `gorm:"default:0" json:"time_sic"`
	TimeNight float64 `gorm:"default:0" json:"time_night"`
	TimeSolo  float64 `gorm:"default:0" json:"time_solo"`

	TimeXc float64 `gorm:"default:0" json:"time_xc"`
	DistXc float64 `gorm:"default:0" json:"dist_xc"`

	TakeoffsDay   int `gorm:"default:0" json:"takeoffs_day"`
	LandingsDay   int `gorm:"default:0" json:"landings_day"`
	TakeoffsNight int `gorm:"default:0" json:"takeoffs_night"`
	LandingsNight int `gorm:"default:0" json:"landings_night"`

	TimeInstrument    float64 `gorm:"default:0" json:"time_instrument"`
	TimeSimInstrument float64 `gorm:"default:0" json:"time_sim_instrument"`
	HoldsInstrument   int     `gorm:"default:0" json:"holds_instrument"`

	DualGiven  float64 `gorm:"default:0" json:"dual_given"`
	DualRecvd  float64 `gorm:"default:0" json:"dual_recvd"`
	TimeSim    float64 `gorm:"default:0" json:"time_sim"`
	TimeGround float64 `gorm:"default:0" json:"time_ground"`

	Tags []string `gorm:"serializer:json" json:"tags"`
	Pax  []string `gorm:"serializer:json" json:"pax"`
	Crew []string `gorm:"serializer:json" json:"crew"`

	Comments string `gorm:"type:text" json:"comments"`

	Photos []*Image `gorm:"foreignKey:FlightID;references:ID" json:"photos"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Aircraft stores category and class as their symbolic enumeration names so
// records stay self-describing independent of enumeration ordering changes.
type Aircraft struct {
	ID     uint `gorm:"primarykey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user"`

	TailNo   string `gorm:"size:16;uniqueIndex;not null" json:"tail_no"`
	Make     string `gorm:"size:64" json:"make"`
	Model    string `gorm:"size:64" json:"model"`
	Category string `gorm:"size:32;not null" json:"aircraft_category"`
	Class    string `gorm:"size:32;not null" json:"aircraft_class"`

	Hobbs float64 `gorm:"default:0" json:"hobbs"`
	Tach  float64 `gorm:"default:0" json:"tach"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Image struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user"`
	FlightID    *uint     `gorm:"index" json:"flight"`
	FileName    string    `gorm:"size:128;not null" json:"file_name"`
	StorePath   string    `gorm:"size:256;not null" json:"-"`
	RemotePath  string    `gorm:"size:256" json:"-"`
	Size        int64     `gorm:"default:0" json:"size"`
	ContentType string    `gorm:"size:64" json:"content_type"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// RevokedToken is one blacklisted JWT. Rows are never deleted; unbounded
// growth is an accepted tradeoff of the design.
type RevokedToken struct {
	ID        uint      `gorm:"primarykey"`
	Token     string    `gorm:"size:512;uniqueIndex;not null"`
	CreatedAt time.Time `json:"-"`
}
