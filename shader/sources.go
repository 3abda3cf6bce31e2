package shader

// Vertex inputs follow the renderer layout: location 0 position, 1 normal,
// 2 uv, 3 color. projectionMatrix, modelViewMatrix and viewportHeight are
// supplied by the renderer on every draw.

// warpVertexSrc passes sphere positions straight through as clip coordinates,
// so the tunnel fills the view regardless of the camera.
const warpVertexSrc = `
#version 410 core
layout(location = 0) in vec3 position;
layout(location = 2) in vec2 uv;

out vec2 vUv;

void main() {
    vUv = uv;
    gl_Position = vec4(position, 1.0);
}
`

const warpFragmentSrc = `
#version 410 core
uniform float uTime;
uniform vec3 uColor1;
uniform vec3 uColor2;

in vec2 vUv;
out vec4 fragColor;

void main() {
    vec2 uv = vUv - 0.5;
    float radius = length(uv);
    float speed = uTime * 3.0;
    float lines = sin(30.0 * radius - speed * 5.0);
    float glow = smoothstep(0.4, 0.0, radius);
    vec3 color = mix(uColor1, uColor2, glow + lines * 0.3);
    float vignette = smoothstep(0.8, 0.2, radius);
    color *= vignette;
    fragColor = vec4(color, 1.0);
}
`

const modelVertexSrc = `
#version 410 core
layout(location = 0) in vec3 position;
layout(location = 2) in vec2 uv;

uniform mat4 projectionMatrix;
uniform mat4 modelViewMatrix;
uniform float uTime;

out vec2 vUv;

void main() {
    vUv = uv;
    vec3 transformed = position;
    transformed.z += sin(position.y * 2.0 + uTime * 4.0) * 0.1;
    transformed.y += sin(position.x * 3.0 + uTime * 2.0) * 0.05;
    gl_Position = projectionMatrix * modelViewMatrix * vec4(transformed, 1.0);
}
`

const modelFragmentSrc = `
#version 410 core
uniform vec3 uColor;
uniform float uTime;

in vec2 vUv;
out vec4 fragColor;

void main() {
    float lines = abs(sin(vUv.y * 30.0 - uTime * 10.0));
    vec3 color = mix(uColor, vec3(0.0, 0.5, 1.0), lines * 0.3);
    fragColor = vec4(color, 1.0);
}
`

// starVertexSrc sizes points in world units with perspective attenuation.
const starVertexSrc = `
#version 410 core
layout(location = 0) in vec3 position;

uniform mat4 projectionMatrix;
uniform mat4 modelViewMatrix;
uniform float viewportHeight;
uniform float uSize;

void main() {
    vec4 mvPosition = modelViewMatrix * vec4(position, 1.0);
    gl_PointSize = max(uSize * (viewportHeight * 0.5 / -mvPosition.z), 1.0);
    gl_Position = projectionMatrix * mvPosition;
}
`

const starFragmentSrc = `
#version 410 core
uniform vec3 uColor;

out vec4 fragColor;

void main() {
    fragColor = vec4(uColor, 1.0);
}
`
