// KitBox - Agent SDK Installer
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package catalog

// Default returns the built-in catalog, written to catalog.yaml on
// first run.
func Default() *Catalog {
	return &Catalog{
		Version: 1,
		Languages: map[string]Language{
			"python": {
				Name: "Python",
				SDKs: map[string]Kit{
					"Arcade AI": {
						Repo:        "https://github.com/ArcadeAI/arcade-ai",
						Description: "Arcade AI agent development kit",
						InstallCommands: []Command{
							{Run: "uv sync --extra all --dev"},
						},
					},
					"Google ADK": {
						Repo:        "https://github.com/google/adk-python",
						Description: "Google Agent Development Kit",
						InstallCommands: []Command{
							{Run: "pip install google-adk"},
						},
					},
					"IBM Watson": {
						Repo:        "https://github.com/IBM/ibm-watsonx-orchestrate-adk",
						Description: "IBM Watson Orchestrate Agent Development Kit",
						InstallCommands: []Command{
							{Run: "pip install --upgrade ibm-watsonx-orchestrate"},
						},
					},
					"Nerve": {
						Repo:        "https://github.com/evilsocket/nerve",
						Description: "Nerve agent development kit",
						InstallCommands: []Command{
							{Run: "pip install nerve-adk"},
						},
					},
					"OpenAI Agents": {
						Repo:        "https://github.com/openai/openai-agents-python",
						Description: "OpenAI Agents Python SDK",
						InstallCommands: []Command{
							{Run: "python -m venv .venv"},
							{Run: "source .venv/bin/activate && pip install openai-agents", Shell: true},
						},
					},
					"Qwen Agent": {
						Repo:        "https://github.com/QwenLM/Qwen-Agent",
						Description: "Qwen Agent Framework",
						InstallCommands: []Command{
							// Bracket extras must survive as one argument, so
							// this runs through the shell.
							{Run: `pip install -U "qwen-agent[gui,rag,code_interpreter,mcp]"`, Shell: true},
						},
					},
				},
			},
			"typescript": {
				Name: "TypeScript",
				SDKs: map[string]Kit{
					"LangChain.js": {
						Repo:        "https://github.com/langchain-ai/langchainjs",
						Description: "LangChain framework for JavaScript and TypeScript",
						InstallCommands: []Command{
							{Run: "yarn install"},
						},
					},
					"OpenAI Agents JS": {
						Repo:        "https://github.com/openai/openai-agents-js",
						Description: "OpenAI Agents SDK for TypeScript",
						InstallCommands: []Command{
							{Run: "npm install"},
						},
					},
				},
			},
			"dotnet": {
				Name: ".NET",
				SDKs: map[string]Kit{
					"Microsoft Agents": {
						Repo:        "https://github.com/microsoft/Agents",
						Description: "Microsoft Agent Framework",
					},
				},
			},
		},
	}
}
