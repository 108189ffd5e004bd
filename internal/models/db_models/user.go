package db_models

type PricingPlan string

const (
	PlanFree   PricingPlan = "free"
	PlanLaunch PricingPlan = "launch"
)

type User struct {
	BaseModel
	Name          string      `json:"name"`
	Email         string      `gorm:"uniqueIndex" json:"email"`
	PasswordHash  string      `json:"-"`
	PricingPlan   PricingPlan `gorm:"default:free" json:"pricingPlan"`
	EmailVerified bool        `gorm:"default:false" json:"emailVerified"`

	Apps []App `json:"-"`
}
