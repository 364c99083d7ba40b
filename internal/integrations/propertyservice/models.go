package propertyservice

// Property модель собственности из PropertyService
type Property struct {
	ID         int64   `json:"id"`
	TenantID   int64   `json:"tenant_id"`
	Name       string  `json:"name"`
	City       string  `json:"city"`
	Country    string  `json:"country"`
	IsActive   bool    `json:"is_active"`
	ManagerIDs []int64 `json:"manager_ids"`
}

// IsManagedBy проверяет, входит ли пользователь в список менеджеров
func (p *Property) IsManagedBy(userID int64) bool {
	for _, id := range p.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// ErrorResponse модель ошибки от PropertyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
