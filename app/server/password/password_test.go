package password

import (
	"testing"

	"github.com/matryer/is"
)

func TestHashAndVerify(t *testing.T) {
	is := is.New(t)

	digest, err := Hash("correct horse battery staple")
	is.NoErr(err)
	is.True(digest != "correct horse battery staple") // 摘要不是明文

	match, err := Verify("correct horse battery staple", digest)
	is.NoErr(err)
	is.True(match)

	match, err = Verify("wrong password", digest)
	is.NoErr(err)
	is.True(!match)
}

func TestHashNotDeterministic(t *testing.T) {
	is := is.New(t)

	// 盐随机，同一明文两次哈希产生不同摘要，但都能通过校验
	d1, err := Hash("pw")
	is.NoErr(err)
	d2, err := Hash("pw")
	is.NoErr(err)
	is.True(d1 != d2)

	match, err := Verify("pw", d2)
	is.NoErr(err)
	is.True(match)
}

func TestVerifyInvalidDigest(t *testing.T) {
	is := is.New(t)

	_, err := Verify("pw", "not-a-digest")
	is.True(err != nil)
}
