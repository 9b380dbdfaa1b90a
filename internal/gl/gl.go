// SPDX-License-Identifier: Unlicense OR MIT

package gl

type (
	Attrib uint
	Enum   uint
)

const (
	ALWAYS                      = 0x207
	BACK                        = 0x0405
	BLEND                       = 0xbe2
	CCW                         = 0x901
	COLOR_BUFFER_BIT            = 0x4000
	CONTEXT_LOST                = 0x0507
	CULL_FACE                   = 0xb44
	CW                          = 0x900
	DEPTH_BUFFER_BIT            = 0x100
	DEPTH_TEST                  = 0xb71
	DST_ALPHA                   = 0x304
	DST_COLOR                   = 0x306
	EQUAL                       = 0x202
	FALSE                       = 0
	FRAMEBUFFER                 = 0x8d40
	FRONT                       = 0x0404
	FRONT_AND_BACK              = 0x0408
	FUNC_ADD                    = 0x8006
	FUNC_REVERSE_SUBTRACT       = 0x800b
	FUNC_SUBTRACT               = 0x800a
	GEQUAL                      = 0x206
	GREATER                     = 0x204
	INVALID_ENUM                = 0x0500
	INVALID_FRAMEBUFFER_OP      = 0x0506
	INVALID_OPERATION           = 0x0502
	INVALID_VALUE               = 0x0501
	LEQUAL                      = 0x203
	LESS                        = 0x201
	LINES                       = 0x1
	LINE_STRIP                  = 0x3
	MAX                         = 0x8008
	MAX_COMBINED_TEXTURE_UNITS  = 0x8b4d
	MAX_UNIFORM_BUFFER_BINDINGS = 0x8a2f
	MIN                         = 0x8007
	NEVER                       = 0x200
	NOTEQUAL                    = 0x205
	NO_ERROR                    = 0x0
	ONE                         = 0x1
	ONE_MINUS_DST_ALPHA         = 0x305
	ONE_MINUS_DST_COLOR         = 0x307
	ONE_MINUS_SRC_ALPHA         = 0x303
	ONE_MINUS_SRC_COLOR         = 0x301
	OUT_OF_MEMORY               = 0x0505
	POINTS                      = 0x0
	RENDERER                    = 0x1f01
	SRC_ALPHA                   = 0x302
	SRC_ALPHA_SATURATE          = 0x308
	SRC_COLOR                   = 0x300
	TEXTURE0                    = 0x84c0
	TEXTURE_1D                  = 0xde0
	TEXTURE_1D_ARRAY            = 0x8c18
	TEXTURE_2D                  = 0xde1
	TEXTURE_2D_ARRAY            = 0x8c1a
	TEXTURE_3D                  = 0x806f
	TEXTURE_CUBE_MAP            = 0x8513
	TEXTURE_CUBE_MAP_ARRAY      = 0x9009
	TRIANGLES                   = 0x4
	TRIANGLE_FAN                = 0x6
	TRIANGLE_STRIP              = 0x5
	TRUE                        = 1
	UNIFORM_BUFFER              = 0x8a11
	UNSIGNED_INT                = 0x1405
	VERSION                     = 0x1f02
	ZERO                        = 0x0
)
