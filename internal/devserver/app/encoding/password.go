//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "PasswordEncoder=PasswordEncoder"
package encoding

type PasswordEncoder interface {
	HashPassword(password string) (string, error)
	CompareHash(passwordHash, password string) bool
}
