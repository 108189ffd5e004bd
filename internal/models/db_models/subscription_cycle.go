package db_models

// SubscriptionCycle is one billing window for a user. At most one cycle's
// [StartDate, EndDate) interval contains "now" for a given user. Cycles are
// created lazily on first metered use, or by the billing webhook.
type SubscriptionCycle struct {
	BaseModel
	UserID    uint  `gorm:"index;not null" json:"userId"`
	StartDate int64 `gorm:"not null" json:"startDate"`
	EndDate   int64 `gorm:"not null" json:"endDate"`

	User   User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Months []Month `json:"-"`
}

// Month is the usage-counting sub-interval of a cycle. Monthly cycles have a
// single month spanning the whole cycle; yearly cycles decompose into twelve.
type Month struct {
	BaseModel
	SubscriptionCycleID uint  `gorm:"index;not null" json:"subscriptionCycleId"`
	StartDate           int64 `gorm:"not null" json:"startDate"`
	EndDate             int64 `gorm:"not null" json:"endDate"`

	SubscriptionCycle SubscriptionCycle `gorm:"foreignKey:SubscriptionCycleID;constraint:OnDelete:CASCADE" json:"-"`
}

// FormResponsesUsage counts accepted submissions per user and month. The
// unique index on MonthID backs the get-or-create under concurrency; the
// counter is never decremented.
type FormResponsesUsage struct {
	BaseModel
	UserID     uint `gorm:"index;not null" json:"userId"`
	MonthID    uint `gorm:"uniqueIndex;not null" json:"monthId"`
	UsageCount int  `gorm:"default:0" json:"usageCount"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Month Month `gorm:"foreignKey:MonthID;constraint:OnDelete:CASCADE" json:"-"`
}
