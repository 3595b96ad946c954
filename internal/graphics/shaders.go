package graphics

// GLSL sources are embedded so the binary has no asset directory to carry
// around.

const chunkVertShader = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec4 aColor;
layout (location = 3) in vec2 aUV;

uniform mat4 proj;
uniform mat4 view;
uniform mat4 model;

out vec3 vNormal;
out vec4 vColor;
out vec2 vUV;

void main() {
    gl_Position = proj * view * model * vec4(aPos, 1.0);
    vNormal = aNormal;
    vColor = aColor;
    vUV = aUV;
}
`

const chunkFragShader = `#version 410 core
in vec3 vNormal;
in vec4 vColor;
in vec2 vUV;

uniform vec3 lightDir;

out vec4 FragColor;

void main() {
    float diffuse = max(dot(normalize(vNormal), lightDir), 0.0);
    float light = 0.55 + 0.45 * diffuse;
    FragColor = vec4(vColor.rgb * light, vColor.a);
}
`

const wireframeVertShader = `#version 410 core
layout (location = 0) in vec3 aPos;

uniform mat4 proj;
uniform mat4 view;
uniform mat4 model;

void main() {
    gl_Position = proj * view * model * vec4(aPos, 1.0);
}
`

const wireframeFragShader = `#version 410 core
uniform vec3 color;

out vec4 FragColor;

void main() {
    FragColor = vec4(color, 1.0);
}
`

const crosshairVertShader = `#version 410 core
layout (location = 0) in vec2 aPos;

uniform float aspectRatio;

void main() {
    gl_Position = vec4(aPos.x / aspectRatio, aPos.y, 0.0, 1.0);
}
`

const crosshairFragShader = `#version 410 core
out vec4 FragColor;

void main() {
    FragColor = vec4(1.0, 1.0, 1.0, 1.0);
}
`
