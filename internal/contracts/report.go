package contracts

type SalarySummaryPeriodRequest struct {
	CreditID  string `json:"creditId" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}
