package response

import "membership-backoffice/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                `json:"access_token"`
	Employee    *queries.EmployeeView `json:"employee"`
}
