package response

// PredictResponse 满意度预测响应
type PredictResponse struct {
	PredictedClass int    `json:"predicted_class" example:"1"`
	Prediction     string `json:"prediction" example:"Satisfied"`
	Model          string `json:"model" example:"logistic_regression"`
}

// OptionsResponse 界面下拉选项响应
type OptionsResponse struct {
	States     []string `json:"states"`
	Categories []string `json:"categories"`
}
