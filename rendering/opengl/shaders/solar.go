package shaders

// Attribute locations of the solar program. They match core.Vertex.
const (
	PositionLocation = 0
	NormalLocation   = 1
	TexcoordLocation = 2
)

const solarVertexShader = `
#version 410 core

layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;
layout(location = 2) in vec2 texcoord;

out vec3 epos;
out vec3 norm;
out vec2 tc;

uniform mat4 model_matrix;
uniform mat4 view_matrix;
uniform mat4 projection_matrix;

void main() {
    vec4 vpos = view_matrix * model_matrix * vec4(position, 1.0);
    gl_Position = projection_matrix * vpos;

    // Every body is scaled uniformly, so the model-view upper 3x3 is
    // enough to carry normals.
    epos = vpos.xyz;
    norm = normalize(mat3(view_matrix * model_matrix) * normal);
    tc = texcoord;
}
`

const solarFragmentShader = `
#version 410 core

in vec3 epos;
in vec3 norm;
in vec2 tc;

out vec4 fragColor;

uniform mat4 view_matrix;
uniform vec4 light_position;
uniform vec4 Ia, Id, Is;
uniform vec4 Ka, Kd, Ks;
uniform float shininess;

uniform sampler2D TEX1;
uniform bool blinnEnabled;
uniform bool blendEnabled;

vec4 blinnPhong(vec3 l, vec3 n, vec3 h, vec4 albedo) {
    vec4 ambient = Ka * Ia;
    vec4 diffuse = max(albedo * Kd * dot(l, n) * Id, 0.0);
    vec4 specular = max(Ks * pow(max(dot(h, n), 0.0), shininess) * Is, 0.0);
    return ambient * albedo + diffuse + specular;
}

void main() {
    vec4 texel = texture(TEX1, tc);

    vec4 color = texel;
    if (blinnEnabled) {
        vec4 lpos = view_matrix * light_position;
        vec3 n = normalize(norm);
        vec3 l = normalize(lpos.xyz - epos);
        vec3 v = normalize(-epos);
        vec3 h = normalize(l + v);
        color = blinnPhong(l, n, h, texel);
    }

    float alpha = 1.0;
    if (blendEnabled) {
        // Ring textures are RGB; dark bands become transparent gaps.
        alpha = dot(texel.rgb, vec3(0.299, 0.587, 0.114));
        if (alpha < 0.02) discard;
    }
    fragColor = vec4(color.rgb, alpha);
}
`

// CompileSolarShaders builds the textured Blinn-Phong program used for every
// sphere and ring
func CompileSolarShaders() (uint32, error) {
	return BuildProgram("solar", solarVertexShader, solarFragmentShader)
}
