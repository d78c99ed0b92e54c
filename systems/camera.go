package systems

import (
	"math"

	"github.com/automoto/riposte/components"
	"github.com/automoto/riposte/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AddCameraSubject makes the camera frame entry. Adding it twice is a no-op.
func AddCameraSubject(e *ecs.ECS, entry *donburi.Entry) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	for _, s := range camera.Subjects {
		if s == entry {
			return
		}
	}
	camera.Subjects = append(camera.Subjects, entry)
}

// UpdateCamera centres the camera between its subjects.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, camera)

	if len(camera.Subjects) == 0 {
		return
	}
	var targetX float64
	for _, s := range camera.Subjects {
		targetX += components.Transform.Get(s).Position.X
	}
	targetX /= float64(len(camera.Subjects))
	targetY := float64(config.C.Height) / 2

	// Camera bounds: ensure the arena always fills the screen
	if pisteEntry, ok := components.Piste.First(e.World); ok {
		piste := components.Piste.Get(pisteEntry)
		screenWidth := float64(config.C.Width)
		minCameraX := screenWidth / 2
		maxCameraX := math.Max(minCameraX, piste.Width-screenWidth/2)
		targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}

// SubscribeCameraShake shakes the camera on touches and parries.
func SubscribeCameraShake(e *ecs.ECS) {
	TouchScored.Subscribe(e.World, func(w donburi.World, ev TouchScoredEvent) {
		TriggerScreenShake(e, config.Camera.TouchShakeIntensity, config.Camera.TouchShakeDuration)
	})
	ParryLanded.Subscribe(e.World, func(w donburi.World, ev ParryLandedEvent) {
		TriggerScreenShake(e, config.Camera.ParryShakeIntensity, config.Camera.ParryShakeDuration)
	})
}
