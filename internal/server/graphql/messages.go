package graphql

// User-facing messages. These strings are part of the API contract and are
// asserted verbatim by clients, so they must not be reworded.
const (
	MsgEmailInUse              = "사용중인 이메일 입니다"
	MsgCreateAccountFailed     = "계정을 만들 수 없습니다."
	MsgUserNotFound            = "사용자를 찾을 수 없습니다"
	MsgInvalidPassword         = "비밀번호가 맞지 않습니다"
	MsgForbidden               = "권한이 없습니다"
	MsgLoginFailed             = "로그인을 할 수 없습니다"
	MsgEmailUnchanged          = "동일한 이메일로는 변경할 수 없습니다"
	MsgEditProfileFailed       = "프로필을 수정할 수 없습니다"
	MsgPasswordUnchanged       = "동일한 비밀번호로는 변경할 수 없습니다"
	MsgEditPasswordFailed      = "비밀번호를 변경할 수 없습니다"
	MsgInvalidVerificationCode = "인증 코드를 확인하세요"
	MsgVerifyEmailFailed       = "이메일 인증을 하지 못했습니다"
)
