package objects

import "reflect"

// Billing cycles a payment plan can be charged by.
const (
	BillingMonthly = "monthly"
	BillingYearly  = "yearly"
)

type PaymentPlan struct {
	PlanID       string  `json:"id" bson:"plan_id,omitempty"`
	Name         string  `json:"name" bson:"name,omitempty"`
	Price        float64 `json:"price" bson:"price"`
	BillingCycle string  `json:"billingCycle" bson:"billing_cycle,omitempty"`
}

func (p PaymentPlan) GetID() string {
	return p.PlanID
}

func (p PaymentPlan) IsNil() bool {
	return reflect.ValueOf(p).IsZero()
}
