package controller

type Code uint

const (
	CodeSuccess Code = iota + 1000
	CodeInternalErr
	CodeServerBusy
	CodeInvalidParam
	CodeUnsupportedAuthProtocol
	CodeInvalidToken
	CodeExpiredToken

	CodeUserExist
	CodeUserNotExist
	CodeWrongPassword
	CodeNeedLogin
	CodeExpiredLogin

	CodeNoSuchCategory
	CodeCategoryExist

	CodeNoSuchBlog
	CodeSlugExist
	CodeNotBlogAuthor

	CodeNoSuchComment
	CodeNotCommentAuthor
)

var codeMsgMap = map[Code]string{
	CodeSuccess:                 "success",
	CodeInternalErr:             "server busy",
	CodeServerBusy:              "rate limited",
	CodeInvalidParam:            "invalid parameter",
	CodeUnsupportedAuthProtocol: "unsupported auth protocol",
	CodeInvalidToken:            "invalid token",
	CodeExpiredToken:            "expired token",

	CodeUserExist:     "user already exists",
	CodeUserNotExist:  "user does not exist",
	CodeWrongPassword: "wrong password",
	CodeNeedLogin:     "login required",
	CodeExpiredLogin:  "login expired",

	CodeNoSuchCategory: "no such category",
	CodeCategoryExist:  "category already exists",

	CodeNoSuchBlog:    "no such blog",
	CodeSlugExist:     "slug already taken",
	CodeNotBlogAuthor: "not the blog author",

	CodeNoSuchComment:    "no such comment",
	CodeNotCommentAuthor: "not the comment author",
}

func (c Code) getMsg() string {
	msg, ok := codeMsgMap[c]
	if !ok {
		return "unknown error code"
	}
	return msg
}
