package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/inventory-management/internal"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock UserRepository for testing
type mockUserRepository struct {
	creds         map[string]*Credentials
	returnError   bool
	errorToReturn error
}

func newMockUserRepository() *mockUserRepository {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.DefaultCost)

	return &mockUserRepository{
		creds: map[string]*Credentials{
			"budi": {
				UserID:       1,
				Username:     "budi",
				Role:         RoleStudent,
				PasswordHash: string(hashedPassword),
			},
			"admin": {
				UserID:       2,
				Username:     "admin",
				Role:         RoleAdmin,
				PasswordHash: string(hashedPassword),
			},
		},
	}
}

func (m *mockUserRepository) GetCredentials(username string) (*Credentials, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	if creds, exists := m.creds[username]; exists {
		return creds, nil
	}
	return nil, errors.New("user not found")
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service  *Service
		mockRepo *mockUserRepository
		tokenGen *JWTTokenGenerator
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		tokenGen = NewJWTTokenGenerator("test-secret", 15*time.Minute, 24*time.Hour)
		service = NewService(mockRepo, tokenGen)
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.Context("when credentials are valid", func() {
			ginkgo.It("should return access and refresh tokens", func() {
				dto := LoginDTO{Username: "budi", Password: "correct_password"}

				tokens, err := service.Authenticate(dto)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(tokens.Token).ToNot(gomega.BeEmpty())
				gomega.Expect(tokens.RefreshToken).ToNot(gomega.BeEmpty())
			})

			ginkgo.It("should embed user identity in the access token claims", func() {
				dto := LoginDTO{Username: "admin", Password: "correct_password"}

				tokens, err := service.Authenticate(dto)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				claims, err := service.ValidateAccessToken(tokens.Token)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(claims.UserID).To(gomega.Equal(int64(2)))
				gomega.Expect(claims.Username).To(gomega.Equal("admin"))
				gomega.Expect(claims.Role).To(gomega.Equal(RoleAdmin))
			})
		})

		ginkgo.Context("when the password is wrong", func() {
			ginkgo.It("should return invalid credentials", func() {
				dto := LoginDTO{Username: "budi", Password: "wrong_password"}

				_, err := service.Authenticate(dto)

				gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidCredentials))
			})
		})

		ginkgo.Context("when the user does not exist", func() {
			ginkgo.It("should return invalid credentials, not a lookup error", func() {
				dto := LoginDTO{Username: "nobody", Password: "correct_password"}

				_, err := service.Authenticate(dto)

				gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidCredentials))
			})
		})

		ginkgo.Context("when fields are missing", func() {
			ginkgo.It("should reject an empty username", func() {
				_, err := service.Authenticate(LoginDTO{Password: "x"})
				gomega.Expect(err).To(gomega.HaveOccurred())
			})

			ginkgo.It("should reject an empty password", func() {
				_, err := service.Authenticate(LoginDTO{Username: "budi"})
				gomega.Expect(err).To(gomega.HaveOccurred())
			})
		})
	})

	ginkgo.Describe("RefreshTokens", func() {
		ginkgo.It("should issue a new pair from a valid token", func() {
			tokens, err := service.Authenticate(LoginDTO{Username: "budi", Password: "correct_password"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			refreshed, err := service.RefreshTokens(tokens.RefreshToken)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(refreshed.Token).ToNot(gomega.BeEmpty())

			claims, err := service.ValidateAccessToken(refreshed.Token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(claims.Username).To(gomega.Equal("budi"))
		})

		ginkgo.It("should reject a garbage token", func() {
			_, err := service.RefreshTokens("not-a-token")
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidToken))
		})

		ginkgo.It("should reject an expired token", func() {
			expiredGen := NewJWTTokenGenerator("test-secret", time.Nanosecond, time.Nanosecond)
			expiredGen.AccessTokenTTL = -time.Hour

			token, err := expiredGen.GenerateAccessToken(AuthUser{UserID: 1, Username: "budi", Role: RoleStudent})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.RefreshTokens(token)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrTokenExpired))
		})
	})

	ginkgo.Describe("ValidateAccessToken", func() {
		ginkgo.It("should reject a token signed with a different secret", func() {
			otherGen := NewJWTTokenGenerator("other-secret", 15*time.Minute, 24*time.Hour)
			token, err := otherGen.GenerateAccessToken(AuthUser{UserID: 1, Username: "budi", Role: RoleStudent})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidToken))
		})
	})
})
