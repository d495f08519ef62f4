package gdrive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/drive/v3"
)

func TestConvertFile(t *testing.T) {
	f := &drive.File{
		Id:          "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs",
		Name:        "2024-05-01.json",
		Md5Checksum: "9e107d9d372bb6826bd81d3542a419d6",
	}

	info := convertFile(f)
	assert.Equal(t, "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs", info.ID)
	assert.Equal(t, "2024-05-01.json", info.Name)
	assert.Equal(t, "9e107d9d372bb6826bd81d3542a419d6", info.MD5Checksum)
}
