// Package shader holds the GLSL sources for the sprite pipeline together
// with a pure-Go reference implementation of both stages. The reference
// implementation mirrors the GLSL math exactly and is what the tests and
// the software rasterizer run against.
package shader

// Binding selects how the host binds attributes and uniforms to the
// shader program. Both strategies express the same logical contract; only
// the host-integration differs.
type Binding int

const (
	// BindByName looks locations up at link time with
	// GetAttribLocation/GetUniformLocation.
	BindByName Binding = iota

	// BindByLocation relies on the fixed layout(location=N) indices
	// below. Host vertex-buffer setup must match them; nothing checks
	// this at runtime.
	BindByLocation
)

// Attribute and uniform locations for the explicit-location variants.
// The implicit variants resolve the same names at link time instead.
const (
	LocPosition = 0
	LocTexCoord = 1
	LocColor    = 2

	LocResolution = 0 // vertex stage
	LocAlbedo     = 1 // fragment stage
)

// Attribute and uniform names shared by both variants.
const (
	NamePosition   = "a_position"
	NameTexCoord   = "a_texcoord"
	NameColor      = "a_color"
	NameResolution = "u_resolution"
	NameDebugConst = "u_do_const"
	NameAlbedo     = "u_albedo"
)

// Sources returns the vertex and fragment shader pair for the given
// binding strategy. Sources carry no trailing NUL; the GL layer appends
// one before upload.
func Sources(binding Binding) (vertex, fragment string) {
	if binding == BindByLocation {
		return SpriteVertexShader, SpriteFragmentShader
	}
	return BasicVertexShader, BasicFragmentShader
}

// BasicVertexShader is the name-bound variant. It has no color attribute
// (the color varying is constant white) and carries the u_do_const debug
// toggle: when positive it renders a fixed triangle with no vertex buffer
// bound, which is how the pipeline is bootstrapped before any buffer
// upload code exists.
const BasicVertexShader = `#version 410 core
in vec2 a_position;
in vec2 a_texcoord;

uniform vec2 u_resolution;
uniform int u_do_const;

out vec4 v_color;
out vec2 v_texcoord;

const vec2 tri[3] = vec2[3](
    vec2(0.5, 1.0),
    vec2(0.0, 0.0),
    vec2(1.0, 0.0)
);

void main() {
    if (u_do_const > 0) {
        // Fixed triangle in [0,1] space. Deliberately skips the
        // resolution divide and the Y flip.
        gl_Position = vec4(tri[gl_VertexID] - 0.5, 0.0, 1.0);
    } else {
        // Pixel space -> [0,1] -> [-1,1]. Y is flipped so that pixel
        // (0,0) lands at the top-left of the viewport.
        vec2 pos = a_position / u_resolution * 2.0 - 1.0;
        gl_Position = vec4(pos.x, -pos.y, 0.0, 1.0);
    }
    v_color = vec4(1.0);
    v_texcoord = a_texcoord;
}
`

// BasicFragmentShader tints the albedo sample with the interpolated
// color. No clamping; out-of-range values are the blend stage's problem.
const BasicFragmentShader = `#version 410 core
in vec4 v_color;
in vec2 v_texcoord;

uniform sampler2D u_albedo;

out vec4 o_color;

void main() {
    o_color = v_color * texture(u_albedo, v_texcoord);
}
`

// SpriteVertexShader is the explicit-location variant used by the sprite
// batch. It adds a per-vertex color attribute and drops the debug toggle.
const SpriteVertexShader = `#version 410 core
#extension GL_ARB_explicit_uniform_location : require

layout(location = 0) in vec2 a_position;
layout(location = 1) in vec2 a_texcoord;
layout(location = 2) in vec4 a_color;

layout(location = 0) uniform vec2 u_resolution;

out vec4 v_color;
out vec2 v_texcoord;

void main() {
    vec2 pos = a_position / u_resolution * 2.0 - 1.0;
    gl_Position = vec4(pos.x, -pos.y, 0.0, 1.0);
    v_color = a_color;
    v_texcoord = a_texcoord;
}
`

const SpriteFragmentShader = `#version 410 core
#extension GL_ARB_explicit_uniform_location : require

in vec4 v_color;
in vec2 v_texcoord;

layout(location = 1) uniform sampler2D u_albedo;

out vec4 o_color;

void main() {
    o_color = v_color * texture(u_albedo, v_texcoord);
}
`
