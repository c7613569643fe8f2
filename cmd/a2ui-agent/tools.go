package main

import (
	"encoding/json"

	"github.com/laxmi-genai/adk-a2ui-samples/core"
	"github.com/laxmi-genai/adk-a2ui-samples/tool"
)

// landmark is one selectable option the agent presents.
type landmark struct {
	Name          string `json:"name"`
	Country       string `json:"country"`
	Description   string `json:"description"`
	ImageURL      string `json:"image_url"`
	WikipediaLink string `json:"wikipedia_link"`
}

var landmarks = []landmark{
	{
		Name:          "Eiffel Tower",
		Country:       "France",
		Description:   "An iconic wrought-iron lattice tower on the Champ de Mars in Paris, named after the engineer Gustave Eiffel. Built for the 1889 World's Fair, it has become a global cultural symbol of France.",
		ImageURL:      "https://www.publicdomainpictures.net/pictures/80000/velka/paris-eiffel-tower-1393841654WTb.jpg",
		WikipediaLink: "https://en.wikipedia.org/wiki/Eiffel_Tower",
	},
	{
		Name:          "Taj Mahal",
		Country:       "India",
		Description:   "An ivory-white marble mausoleum on the right bank of the river Yamuna in Agra. It was commissioned in 1632 by the Mughal emperor Shah Jahan to house the tomb of his favorite wife, Mumtaz Mahal.",
		ImageURL:      "https://www.publicdomainpictures.net/pictures/180000/velka/taj-mahal.jpg",
		WikipediaLink: "https://en.wikipedia.org/wiki/Taj_Mahal",
	},
	{
		Name:          "Statue of Liberty",
		Country:       "USA",
		Description:   "A colossal neoclassical sculpture on Liberty Island in New York Harbor. A gift from the people of France to the United States, it depicts Libertas, the Roman goddess of liberty, holding a torch.",
		ImageURL:      "https://www.publicdomainpictures.net/pictures/210000/velka/statue-of-liberty-1485195709Nms.jpg",
		WikipediaLink: "https://en.wikipedia.org/wiki/Statue_of_Liberty",
	},
}

// getItemsTool returns the list of items to choose from as a JSON string.
func getItemsTool() tool.Tool {
	params := map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
	return tool.NewFunctionTool(
		"get_items",
		"Call this tool to get the list of items to choose from.",
		params,
		func(_ *core.ToolContext, _ map[string]any) (any, error) {
			data, err := json.Marshal(landmarks)
			if err != nil {
				return nil, err
			}
			return string(data), nil
		},
	)
}

// selectItemTool acknowledges a selection. The demo has no backend to act
// on it; the model confirms the choice in its UI response.
func selectItemTool() tool.Tool {
	params := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"userAction": map[string]any{
				"type":        "string",
				"description": "The complete userAction JSON object received from the client.",
			},
		},
		"required": []string{"userAction"},
	}
	return tool.NewFunctionTool(
		"select_item",
		"Call this tool to process the user's selection.",
		params,
		func(_ *core.ToolContext, _ map[string]any) (any, error) {
			return "Selection received and processed.", nil
		},
	)
}
