package request

type SendSMSRequest struct {
	Phone   string `json:"phone" validate:"required,min=6,max=20"`
	Message string `json:"message" validate:"required,max=480"`
}
