package service

import (
	"context"
	"testing"

	"mystore/internal/model"
	"mystore/internal/otp"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) (bool, error) {
	args := m.Called(ctx, email, passwordHash)
	return args.Bool(0), args.Error(1)
}

func newAuthService(userRepo *MockUserRepository, sellerRepo *MockSellerRepository, mailer *MockMailer) (AuthService, *otp.Store) {
	otps := otp.NewStore(zerolog.Nop())
	return NewAuthService(userRepo, sellerRepo, otps, mailer, zerolog.Nop()), otps
}

func TestShopperSignup_HashesPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "new@example.com" && u.Password != "secret" && u.Password != ""
	})).Return(nil)

	svc, _ := newAuthService(userRepo, new(MockSellerRepository), new(MockMailer))
	err := svc.Signup(context.Background(), model.SignupRequest{
		Name: "Jane", Email: "New@Example.com", Password: "secret",
	})

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestShopperSignup_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "taken@example.com").
		Return(&model.User{Email: "taken@example.com"}, nil)

	svc, _ := newAuthService(userRepo, new(MockSellerRepository), new(MockMailer))
	err := svc.Signup(context.Background(), model.SignupRequest{
		Name: "Jane", Email: "taken@example.com", Password: "secret",
	})

	assert.ErrorIs(t, err, model.ErrDuplicateEmail)
}

func TestShopperLogin(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&model.User{Name: "Jane", Email: "jane@example.com", Password: hashFor(t, "secret")}, nil)

	svc, _ := newAuthService(userRepo, new(MockSellerRepository), new(MockMailer))

	user, err := svc.Login(context.Background(), model.Credentials{Email: "jane@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "Jane", user.Name)

	_, err = svc.Login(context.Background(), model.Credentials{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestShopperLogin_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	svc, _ := newAuthService(userRepo, new(MockSellerRepository), new(MockMailer))
	_, err := svc.Login(context.Background(), model.Credentials{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestSendOTP_EmailsCode(t *testing.T) {
	mailer := new(MockMailer)
	var sentBody string
	mailer.On("Send", mock.Anything, "jane@example.com", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sentBody = args.String(3) }).
		Return(nil)

	svc, _ := newAuthService(new(MockUserRepository), new(MockSellerRepository), mailer)
	require.NoError(t, svc.SendOTP(context.Background(), "jane@example.com"))
	assert.Contains(t, sentBody, "verification code")
}

func TestSendResetOTP_RequiresAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	svc, _ := newAuthService(userRepo, new(MockSellerRepository), new(MockMailer))
	err := svc.SendResetOTP(context.Background(), "nobody@example.com", model.AccountCustomer)

	var domainErr *model.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, model.ErrCodeInvalidCredential, domainErr.Code)
}

func TestSendResetOTP_SellerAccountChecksSellerTable(t *testing.T) {
	sellerRepo := new(MockSellerRepository)
	mailer := new(MockMailer)
	sellerRepo.On("GetByEmail", mock.Anything, "seller@example.com").
		Return(&model.Seller{Email: "seller@example.com"}, nil)
	mailer.On("Send", mock.Anything, "seller@example.com", mock.Anything, mock.Anything).Return(nil)

	svc, _ := newAuthService(new(MockUserRepository), sellerRepo, mailer)
	require.NoError(t, svc.SendResetOTP(context.Background(), "seller@example.com", model.AccountSeller))
	sellerRepo.AssertExpectations(t)
}

func TestResetPassword_SellerFlow(t *testing.T) {
	sellerRepo := new(MockSellerRepository)
	sellerRepo.On("UpdatePassword", mock.Anything, "seller@example.com", mock.AnythingOfType("string")).Return(true, nil)

	svc, otps := newAuthService(new(MockUserRepository), sellerRepo, new(MockMailer))
	code, err := otps.Issue("seller@example.com")
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), model.ResetPasswordRequest{
		Email: "seller@example.com", OTP: code, NewPassword: "newsecret", UserType: model.AccountSeller,
	})
	require.NoError(t, err)
	sellerRepo.AssertExpectations(t)
}

func TestResetPassword_WrongOTP(t *testing.T) {
	svc, otps := newAuthService(new(MockUserRepository), new(MockSellerRepository), new(MockMailer))
	_, err := otps.Issue("jane@example.com")
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), model.ResetPasswordRequest{
		Email: "jane@example.com", OTP: "0000000", NewPassword: "newsecret", UserType: model.AccountCustomer,
	})
	assert.ErrorIs(t, err, model.ErrOTPMismatch)
}

func TestResetPassword_CodeSingleUse(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("UpdatePassword", mock.Anything, "jane@example.com", mock.AnythingOfType("string")).Return(true, nil)

	svc, otps := newAuthService(userRepo, new(MockSellerRepository), new(MockMailer))
	code, err := otps.Issue("jane@example.com")
	require.NoError(t, err)

	req := model.ResetPasswordRequest{
		Email: "jane@example.com", OTP: code, NewPassword: "newsecret", UserType: model.AccountCustomer,
	}
	require.NoError(t, svc.ResetPassword(context.Background(), req))
	assert.ErrorIs(t, svc.ResetPassword(context.Background(), req), model.ErrOTPNotFound)
}
