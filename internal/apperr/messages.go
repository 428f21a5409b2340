package apperr

// User-facing message catalog for the IAM module.
const (
	MsgForbidden      = "Authorization Failure: You're not allowed!"
	MsgUnauthorized   = "Authorization Failure: Incorrect credentials!"
	MsgInternal       = "Internal Error: Something went wrong!"
	MsgAuthentication = "Login Failed: Invalid username or password!"
	MsgAccountLocked  = "Your account is locked! Please contact the system admin."
	MsgAccountInactive = "Your account is not active! Please contact the system admin."

	MsgUserNotFound      = "User not found!"
	MsgUserAlreadyExists = "User already exists"
	MsgPasswordIncorrect = "Incorrect password!"

	MsgUserTypeNotFound   = "User type not found!"
	MsgRoleNotFound       = "Role not found"
	MsgPermissionNotFound = "Permission not found"

	MsgUserNameRequired        = "User name is required!"
	MsgUserTypeRequired        = "User type is required!"
	MsgUsernameRequired        = "Username is required!"
	MsgPasswordRequired        = "Password is required!"
	MsgNewPasswordRequired     = "New password is required!"
	MsgCurrentPasswordRequired = "Current password is required!"

	MsgRoleNameRequired           = "Role is required"
	MsgPermissionNameRequired     = "Permission name is required"
	MsgPermissionCodeRequired     = "Permission code is required"
	MsgPermissionTypeRequired     = "Permission type is required"
	MsgPermissionResourceRequired = "Resource is required"
	MsgUserTypeNameRequired       = "User type name is required!"
	MsgRoleNameTaken              = "Role name already in use"
	MsgUserTypeNameTaken          = "User type name already in use!"

	MsgPolicyUserRequired = "User is required"
	MsgPolicyRoleRequired = "Role is required"

	MsgPageInvalid  = "Page must be a positive number"
	MsgLimitInvalid = "Limit must be a positive number"

	MsgImageInvalidType = "Only .png, .jpg and .jpeg format allowed!"
)
