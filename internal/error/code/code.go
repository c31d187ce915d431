package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
)

// 接待员相关错误码 (101xxx).
const (
	// ErrReceptionistNotFound - 404: 接待员不存在.
	ErrReceptionistNotFound int = iota + 101000
	// ErrReceptionistAlreadyExist - 400: 名称已被注册.
	ErrReceptionistAlreadyExist
	// ErrPasswordIncorrect - 401: 密码错误.
	ErrPasswordIncorrect
)

// 订单相关错误码 (102xxx).
const (
	// ErrOrderNotFound - 404: 订单不存在.
	ErrOrderNotFound int = iota + 102000
	// ErrOrderTypeInvalid - 400: 订单类型无效.
	ErrOrderTypeInvalid
	// ErrOrderAmountInvalid - 400: 订单金额不在允许范围.
	ErrOrderAmountInvalid
	// ErrBossNotFound - 404: 老板不存在.
	ErrBossNotFound
)

// 惩罚相关错误码 (103xxx).
const (
	// ErrPenaltyNotFound - 404: 惩罚记录不存在.
	ErrPenaltyNotFound int = iota + 103000
)

// 公告相关错误码 (104xxx).
const (
	// ErrAnnouncementNotFound - 404: 公告不存在.
	ErrAnnouncementNotFound int = iota + 104000
)

// 结算相关错误码 (105xxx).
const (
	// ErrAlreadySettled - 400: 本周已结算.
	ErrAlreadySettled int = iota + 105000
	// ErrNotSettled - 400: 本周尚未结算.
	ErrNotSettled
)

// 数据库相关错误码 (106xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 106000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
