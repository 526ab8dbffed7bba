package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Board vertex shader: screen-space quad, passes pixel coordinates
// through for the checkerboard math.
const boardVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos; // pixels

uniform vec2 uResolution;

out vec2 vPix;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vPix = aPos;
}
` + "\x00"

// Board fragment shader: checkerboard cells inside the play field, a
// thin edge ring around it, nothing elsewhere.
const boardFragSrc = `#version 410 core

uniform vec2 uBoardOrigin; // top-left of the field, pixels
uniform float uCellPx;
uniform vec2 uGridSize; // cells
uniform vec3 uColA;
uniform vec3 uColB;
uniform vec3 uEdge;

in vec2 vPix;
out vec4 FragColor;

void main() {
    vec2 cell = (vPix - uBoardOrigin) / uCellPx;
    if (cell.x < 0.0 || cell.y < 0.0 || cell.x >= uGridSize.x || cell.y >= uGridSize.y) {
        vec2 d = max(-cell, cell - uGridSize);
        float m = max(d.x, d.y) * uCellPx;
        if (m < 3.0) {
            FragColor = vec4(uEdge, 1.0);
            return;
        }
        discard;
    }
    float parity = mod(floor(cell.x) + floor(cell.y), 2.0);
    vec3 col = mix(uColA, uColB, parity);
    FragColor = vec4(col, 1.0);
}
` + "\x00"

// Sprite vertex shader: screen-space point sprites with per-vertex
// pos/size/color/shape.
const spriteVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos; // pixels
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aShape;

uniform vec2 uResolution;

out vec4 vColor;
out float vShape;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    gl_PointSize = max(1.0, floor(aSize + 0.5));
    vColor = aColor;
    vShape = aShape;
}
` + "\x00"

// Sprite fragment shader: the shape index picks square, circle, or a
// rounded snake cell with a darker rim.
const spriteFragSrc = `#version 410 core

in vec4 vColor;
in float vShape;
out vec4 FragColor;

void main() {
    vec2 uv = gl_PointCoord - vec2(0.5);
    vec3 col = vColor.rgb;

    if (vShape > 1.5) {
        // Rounded cell: box SDF with corner radius, rim darkening.
        vec2 q = abs(uv) - vec2(0.30);
        float d = length(max(q, 0.0));
        if (d > 0.17) discard;
        float rim = smoothstep(0.10, 0.17, d);
        col = mix(col, col * 0.55, rim);
    } else if (vShape > 0.5) {
        if (length(uv) > 0.48) discard;
    } else {
        if (max(abs(uv.x), abs(uv.y)) > 0.5) discard;
    }

    FragColor = vec4(col, vColor.a);
}
` + "\x00"

// Glow fragment shader: additive radial falloff for light sprites.
// vColor.rgb should be pre-multiplied by desired brightness.
const glowFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    float dist = length(gl_PointCoord - vec2(0.5)) * 2.0; // 0=center, 1=edge
    float falloff = clamp(1.0 - dist, 0.0, 1.0);
    falloff = falloff * falloff; // quadratic: natural light falloff
    FragColor = vec4(vColor.rgb * falloff, 1.0);
}
` + "\x00"

// Text vertex shader: screen-space textured quads for font rendering.
const textVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// Text fragment shader: font atlas sampling with color tint.
const textFragSrc = `#version 410 core

uniform sampler2D uFontTex;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    vec4 t = texture(uFontTex, vUV);
    if (t.a < 0.01) discard;
    FragColor = vec4(t.rgb * vColor.rgb, t.a * vColor.a);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
