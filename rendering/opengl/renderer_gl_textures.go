package opengl

import (
	"log"

	"github.com/go-gl/gl/v4.3-core/gl"

	"solarsystem/core"
	"solarsystem/rendering/textures"
)

// loadTextures fills ids with one texture per path. A file that cannot be
// loaded is replaced by a grey placeholder so the scene still renders.
func (r *SolarRenderer) loadTextures(ids []uint32, paths []string) {
	for i, path := range paths {
		if i >= len(ids) {
			break
		}
		img, err := textures.Load(path, r.settings.Textures.MaxSize)
		if err != nil {
			log.Printf("warning: %v (using placeholder)", err)
			img = textures.Placeholder()
		}
		ids[i] = uploadTexture(img)
	}
}

// uploadTexture creates a mipmapped RGB texture clamped at the edges
func uploadTexture(img *textures.Image) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	// Rows are padded to 4 bytes, GL's default unpack alignment
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(img.Width), int32(img.Height), 0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	levels := core.MipLevels(img.Width, img.Height)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_LEVEL, int32(levels-1))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)

	return id
}
