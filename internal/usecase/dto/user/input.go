package user

type RegisterUserInput struct {
	Owner string
}
