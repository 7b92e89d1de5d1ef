package prompts

// Default returns the built-in prompt set. prompts.yaml overrides any field.
func Default() *Prompts {
	return &Prompts{
		System: SystemPrompts{
			Assistant:       "You are an expert video production assistant who creates comprehensive production packages for content creators.",
			Screenwriter:    "You are a professional screenwriter. Create detailed, engaging screenplays for video content. Always respond with valid JSON.",
			Cinematographer: "You are a professional cinematographer. Generate detailed, specific shot lists and camera setups for video production. Always respond with valid JSON.",
			Scriptwriter:    "You are a professional scriptwriter. Generate natural, engaging dialogue for video content. Always respond with valid JSON.",
			MusicSupervisor: "You are a music supervisor for video content. Generate specific, actionable music suggestions for different platforms and content types.",
			Thumbnail:       "You are a thumbnail design expert. Generate specific, actionable thumbnail concepts that drive clicks and engagement on different platforms.",
			Strategist:      "You are a social media strategist. Generate specific, actionable posting strategies. Always respond with valid JSON.",
			Complete:        "You are an expert video production assistant. Always respond with valid JSON in the exact format requested.",
		},
		Section: SectionPrompts{
			Title: `Create a catchy, SEO-optimized title for {{.Platform}} about: {{.Idea}}

Platform: {{.Platform}}
Target audience: {{.Audience}}
Tone: {{.Tone}}

Make it clickable, include power words, and optimize for the {{.Platform}} algorithm.
Respond with the title only, no quotes and no explanation.`,

			Hook: `Create a compelling 15-second hook for a {{.Platform}} video about: {{.Idea}}

Requirements:
- Grab attention in the first 3 seconds
- Create a curiosity gap
- Match the {{.Tone}} tone
- Target the {{.Audience}} audience
- Include a pattern interrupt or surprising statement

Write the exact words the creator should say. Respond with the hook only.`,

			Screenplay: `Create a detailed scene-by-scene screenplay for: {{.Idea}}

Duration: {{.Duration}} (TOTAL LENGTH: {{.TotalTime}})
Platform: {{.Platform}}
Tone: {{.Tone}}
Target audience: {{.Audience}}

CRITICAL: Create exactly {{.SceneCount}} scenes that total {{.TotalTime}} in length.
Use these exact timings, in order: {{.Timings}}

Each scene needs:
- Scene number (1 to {{.SceneCount}})
- Its timing from the list above
- A short scene description
- A detailed action description with enough content to fill the time slot

Respond with a JSON array only, like:
[
  {"scene": 1, "timing": "0:00-0:15", "description": "Opening", "action": "Detailed action"},
  {"scene": 2, "timing": "0:15-1:30", "description": "Main content", "action": "Detailed action"}
]`,

			Shots: `Create a detailed shot list for a {{.Platform}} video about: {{.Idea}}

Duration: {{.Duration}}
Tone: {{.Tone}}
Target audience: {{.Audience}}

Generate 5-7 specific shots with:
- Shot number
- Shot type (close-up, medium, wide, over-shoulder, B-roll, etc.)
- Detailed description of what is being filmed
- Duration for each shot
- Purpose of the shot

Respond with a JSON array only, like:
[
  {"shot": 1, "type": "Wide shot", "description": "Establish the setting", "duration": "30 seconds", "purpose": "Establish scene"}
]`,

			Dialogue: `Write natural, engaging dialogue for a {{.Platform}} video about: {{.Idea}}

Tone: {{.Tone}}
Target audience: {{.Audience}}
Duration: {{.Duration}}
{{if .SceneOutline}}
The video follows these scenes:
{{.SceneOutline}}
{{end}}
Create 4-6 key dialogue lines that:
- Sound conversational and authentic
- Match the {{.Tone}} tone
- Fit {{.Platform}}
- Include specific timing (e.g. "0:00-0:05")
- Flow naturally between lines

Respond with a JSON array only, like:
[
  {"speaker": "Host", "line": "Dialogue text", "timing": "0:00-0:05"}
]`,

			Camera: `Generate professional camera angles and movements for a {{.Platform}} video about: {{.Idea}}

Video details:
- Platform: {{.Platform}}
- Duration: {{.Duration}}
- Tone: {{.Tone}}
- Target audience: {{.Audience}}

Create 5-6 specific camera setups including:
- Camera angle (eye level, high angle, low angle, over-shoulder, etc.)
- Camera movement (static, pan, tilt, zoom, dolly, etc.)
- Purpose of this angle
- When to use it in the video

Respond with a JSON array only, like:
[
  {"angle": "Eye level", "movement": "Static", "purpose": "Natural perspective", "timing": "Opening"}
]`,

			Music: `Generate specific music and audio suggestions for a {{.Platform}} video about: {{.Idea}}

Video details:
- Platform: {{.Platform}}
- Duration: {{.Duration}}
- Tone: {{.Tone}}
- Target audience: {{.Audience}}

Provide 5-7 specific music/audio suggestions including:
- Type of music (genre, mood, energy level)
- When to use it in the video (intro, background, outro, etc.)
- Platform-specific considerations

Consider trending audio for {{.Platform}} and match the {{.Tone}} tone.
Write one suggestion per line, plain text, no numbering headers.`,

			Thumbnails: `Generate creative thumbnail concepts for a {{.Platform}} video about: {{.Idea}}

Video details:
- Platform: {{.Platform}}
- Tone: {{.Tone}}
- Target audience: {{.Audience}}

Create 5-6 specific thumbnail concepts that:
- Are optimized for {{.Platform}}
- Match the {{.Tone}} tone
- Attract the {{.Audience}} audience
- Include specific visual elements, colors, and text placement
- Are designed for high click-through rates

Write one concept per line, plain text.`,

			Posting: `Generate a comprehensive posting strategy for a {{.Platform}} video about: {{.Idea}}

Video details:
- Platform: {{.Platform}}
- Duration: {{.Duration}}
- Tone: {{.Tone}}
- Target audience: {{.Audience}}

Provide a specific strategy including:
- Best posting times for {{.Platform}}
- 5-10 relevant hashtags for this content
- An optimized description/caption
- Engagement tactics specific to {{.Platform}}

Respond with a JSON object only, like:
{"best_time": "Weekdays 5-8pm", "hashtags": ["#example"], "description": "Engaging description", "engagement_tactics": ["Call to action"]}`,

			Complete: `Create a complete video production package for the following idea:

Idea: {{.Idea}}
Platform: {{.Platform}}
Duration: {{.Duration}} (TOTAL VIDEO LENGTH: {{.TotalTime}})
Target Audience: {{.Audience}}
Tone: {{.Tone}}

CRITICAL: The video must be exactly {{.TotalTime}} long. Create {{.SceneCount}} scenes that add up to this total duration, using these exact timings in order: {{.Timings}}

Generate a comprehensive production package in JSON format with these exact keys:
{
  "title": "SEO-optimized title for {{.Platform}}",
  "hook": "Compelling 15-second opening hook",
  "screenplay": [
    {"scene": 1, "timing": "0:00-0:15", "description": "Opening", "action": "Detailed action"}
  ],
  "shot_list": [
    {"shot": 1, "type": "Wide shot", "description": "Description", "duration": "30 seconds", "purpose": "Establish scene"}
  ],
  "dialogue": [
    {"speaker": "Host", "line": "Dialogue text", "timing": "0:00-0:05"}
  ],
  "camera_angles": [
    {"angle": "Eye level", "movement": "Static", "purpose": "Natural perspective", "timing": "Opening"}
  ],
  "music_suggestions": ["Upbeat background music", "Transition sound effects"],
  "thumbnail_concepts": ["Eye-catching concept 1", "Concept 2"],
  "posting_strategy": {
    "best_time": "Peak hours for {{.Platform}}",
    "hashtags": ["#relevant", "#hashtags"],
    "description": "Engaging description",
    "engagement_tactics": ["Call to action", "Question for comments"]
  }
}

IMPORTANT:
- Create exactly {{.SceneCount}} scenes that total {{.TotalTime}}
- Each scene should be substantial and detailed for the {{.Duration}} duration
- Make it detailed, platform-specific, and actionable.`,
		},
	}
}
