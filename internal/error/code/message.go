package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:      "成功",
	ErrUnknown:      "未知错误",
	ErrBind:         "请求参数绑定错误",
	ErrValidation:   "请求参数验证错误",
	ErrTokenInvalid: "无效的认证令牌",

	// 接待员相关错误码
	ErrReceptionistNotFound:     "接待员不存在",
	ErrReceptionistAlreadyExist: "该名称已被注册哦～",
	ErrPasswordIncorrect:        "密码不正确，请重新输入",

	// 订单相关错误码
	ErrOrderNotFound:      "订单不存在",
	ErrOrderTypeInvalid:   "订单类型无效",
	ErrOrderAmountInvalid: "订单金额不在允许范围",
	ErrBossNotFound:       "老板不存在",

	// 惩罚相关错误码
	ErrPenaltyNotFound: "惩罚记录不存在",

	// 公告相关错误码
	ErrAnnouncementNotFound: "公告不存在",

	// 结算相关错误码
	ErrAlreadySettled: "本周已结算，请勿重复操作",
	ErrNotSettled:     "本周尚未结算",

	// 数据库相关错误码
	ErrDatabase:       "数据库错误",
	ErrRecordNotFound: "记录不存在",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:      StatusOK,
	ErrUnknown:      StatusInternalServerError,
	ErrBind:         StatusBadRequest,
	ErrValidation:   StatusBadRequest,
	ErrTokenInvalid: StatusUnauthorized,

	// 接待员相关错误码
	ErrReceptionistNotFound:     StatusNotFound,
	ErrReceptionistAlreadyExist: StatusBadRequest,
	ErrPasswordIncorrect:        StatusUnauthorized,

	// 订单相关错误码
	ErrOrderNotFound:      StatusNotFound,
	ErrOrderTypeInvalid:   StatusBadRequest,
	ErrOrderAmountInvalid: StatusBadRequest,
	ErrBossNotFound:       StatusNotFound,

	// 惩罚相关错误码
	ErrPenaltyNotFound: StatusNotFound,

	// 公告相关错误码
	ErrAnnouncementNotFound: StatusNotFound,

	// 结算相关错误码
	ErrAlreadySettled: StatusBadRequest,
	ErrNotSettled:     StatusBadRequest,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
