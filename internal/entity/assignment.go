package entity

const (
	TargetTypeAccount = "AWS_ACCOUNT"
	PrincipalTypeUser = "USER"
)

// Assignment is the descriptor of an account assignment.
// It binds a permission set to the principal on the target account.
type Assignment struct {
	InstanceArn      string
	TargetId         string
	TargetType       string
	PermissionSetArn string
	PrincipalType    string
	PrincipalId      string
}

// NewUserAssignment() makes descriptor for the user on the AWS account.
func NewUserAssignment(instanceArn, permissionSetArn, accountId, userId string) *Assignment {
	return &Assignment{
		InstanceArn:      instanceArn,
		TargetId:         accountId,
		TargetType:       TargetTypeAccount,
		PermissionSetArn: permissionSetArn,
		PrincipalType:    PrincipalTypeUser,
		PrincipalId:      userId,
	}
}
