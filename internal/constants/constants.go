package constants

// 订单状态常量
const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCanceled  = "canceled"
)

// OrderStatuses 订单状态全集（用于校验输入）
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCanceled,
}

// 队列名称常量
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// 队列任务类型常量
const (
	TaskTypeOrderStatusEmail = "order:status_email"
)

// 验证码场景常量
const (
	CaptchaSceneAdminLogin    = "admin_login"
	CaptchaSceneCustomerLogin = "customer_login"
)

// 上传场景常量
const (
	UploadSceneProduct = "product"
	UploadSceneCommon  = "common"
)

// 评分范围
const (
	ReviewRatingMin = 1
	ReviewRatingMax = 5
)
