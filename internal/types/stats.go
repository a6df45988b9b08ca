package types

type DashboardStats struct {
	TotalStudents    int `json:"totalStudents"`
	TotalWashermen   int `json:"totalWashermen"`
	TotalOrders      int `json:"totalOrders"`
	PendingOrders    int `json:"pendingOrders"`
	InProgressOrders int `json:"inProgressOrders"`
	CompletedOrders  int `json:"completedOrders"`
}
