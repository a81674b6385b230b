package performance_dto

type ParamEmployeeID struct {
	ID string `params:"employee_id" validate:"required,uuid"`
}
