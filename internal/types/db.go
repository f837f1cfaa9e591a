package types

// TableName is a record-store table name.
type TableName string

const (
	TableNameGymRequests          TableName = "register_requests"
	TableNameTenants              TableName = "tenants"
	TableNameSubscriptions        TableName = "tenant_subscriptions"
	TableNameGyms                 TableName = "gyms"
	TableNameUsers                TableName = "users"
	TableNameSubscriptionPayments TableName = "subscription_payments"
	TableNameSaasPlans            TableName = "saas_plans"
)

func (t TableName) String() string {
	return string(t)
}
