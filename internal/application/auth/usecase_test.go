package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Abirbissou/stock-IT/internal/application/auth"
	"github.com/Abirbissou/stock-IT/internal/application/dto"
	"github.com/Abirbissou/stock-IT/internal/domain"
	"github.com/Abirbissou/stock-IT/internal/domain/entity"
	pkgjwt "github.com/Abirbissou/stock-IT/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

const (
	testSecret   = "un-secret-de-test"
	testPassword = "admin123"
)

func newTestUseCase(t *testing.T, active bool) *auth.UseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{byEmail: map[string]*entity.User{
		"abir@publicis.com": {
			ID:           "00000000-0000-0000-0000-000000000001",
			Email:        "abir@publicis.com",
			PasswordHash: string(hash),
			LastName:     "GUEBBACHE",
			FirstName:    "Abir",
			Role:         entity.RoleAdmin,
			Active:       active,
		},
	}}
	return auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "stock-it-test",
	})
}

// Login correcto: retorna token verificable y los datos públicos del usuario.
func TestLogin_CredencialesValidas(t *testing.T) {
	uc := newTestUseCase(t, true)

	resp, err := uc.Login(dto.LoginRequest{Email: "abir@publicis.com", Password: testPassword})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, resp.Success)
	assert.Equal(t, "abir@publicis.com", resp.User.Email)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)
	assert.Equal(t, "GUEBBACHE", resp.User.LastName)

	// El token debe poder verificarse con el mismo secret y llevar los claims.
	userID, email, role, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, "abir@publicis.com", email)
	assert.Equal(t, entity.RoleAdmin, role)
}

// Password incorrecto → ErrUnauthorized (mismo error que usuario inexistente,
// para no filtrar qué emails existen).
func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := newTestUseCase(t, true)

	_, err := uc.Login(dto.LoginRequest{Email: "abir@publicis.com", Password: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newTestUseCase(t, true)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@publicis.com", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Cuenta desactivada con credenciales correctas → ErrForbidden.
func TestLogin_CuentaInactiva(t *testing.T) {
	uc := newTestUseCase(t, false)

	_, err := uc.Login(dto.LoginRequest{Email: "abir@publicis.com", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
